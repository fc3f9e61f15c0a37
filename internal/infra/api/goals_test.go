package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func TestCreateGoalRejectsBadDirectionLocally(t *testing.T) {
	called := false
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := svcs.Goals.Create(context.Background(), domain.GoalCreate{
		Metric:      "resting_hr",
		Direction:   domain.GoalDirection("sideways"),
		TargetValue: 55,
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidPayload))
	assert.False(t, called, "request must not reach the wire")
}

func TestDeleteGoalResolvesVoid(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/goals/g1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svcs.Goals.Delete(context.Background(), "g1"))
}

func TestAcknowledgeAlertPath(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/goals/g1/alerts/a1/ack", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"a1","goal_id":"g1","value":61,"acknowledged_at":"` + now.Format(time.RFC3339) + `"}`))
	})

	alert, err := svcs.Goals.AcknowledgeAlert(context.Background(), "g1", "a1")
	require.NoError(t, err)
	require.NotNil(t, alert.AcknowledgedAt)
	assert.True(t, alert.AcknowledgedAt.Equal(now))
}

func TestListAlertsAcknowledgedFilter(t *testing.T) {
	var gotQuery string
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"id":"a2","goal_id":"g1","value":48,"acknowledged_at":null}]`))
	})

	alerts, err := svcs.Goals.ListAlerts(context.Background(), "g1", domain.AlertFilter{
		Acknowledged: boolPtr(false),
	})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "acknowledged=false", gotQuery)
	assert.Nil(t, alerts[0].AcknowledgedAt)
}
