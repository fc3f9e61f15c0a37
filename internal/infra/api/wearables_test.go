package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func TestListDailyFilterSerialization(t *testing.T) {
	var gotQuery string
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/wearables/daily", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"wd1","user_id":"u1","date":"2024-01-01","source":"oura","steps":8123}]`))
	})

	days, err := svcs.Wearables.ListDaily(context.Background(), domain.RangeFilter{
		StartDate: "2024-01-01",
		Limit:     intPtr(20),
	})
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.Equal(t, "limit=20&start_date=2024-01-01", gotQuery)
	assert.Equal(t, "wd1", days[0].ID)
	require.NotNil(t, days[0].Steps)
	assert.Equal(t, 8123, *days[0].Steps)
	assert.Nil(t, days[0].RestingHR)
}

func TestListDailyEmptyFilterOmitsQuery(t *testing.T) {
	var gotQuery string
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := svcs.Wearables.ListDaily(context.Background(), domain.RangeFilter{})
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestListSleepNullableStages(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/wearables/sleep", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"s1","user_id":"u1","source":"whoop","duration_minutes":432,"deep_minutes":null,"sleep_score":81}]`))
	})

	sessions, err := svcs.Wearables.ListSleep(context.Background(), domain.RangeFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	assert.Nil(t, sessions[0].DeepMinutes)
	require.NotNil(t, sessions[0].SleepScore)
	assert.Equal(t, 81, *sessions[0].SleepScore)
}

func TestListActivitiesSourceFilter(t *testing.T) {
	var gotQuery string
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/wearables/activities", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := svcs.Wearables.ListActivities(context.Background(), domain.RangeFilter{Source: "garmin"})
	require.NoError(t, err)
	assert.Equal(t, "source=garmin", gotQuery)
}
