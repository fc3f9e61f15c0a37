package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func TestListSupplementsActiveFilter(t *testing.T) {
	var gotQuery string
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/supplements", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"id":"sup1","user_id":"u1","name":"Magnesium","dosage":400,"unit":"mg","frequency":"daily","active":true}]`))
	})

	sups, err := svcs.Supplements.List(context.Background(), domain.SupplementFilter{Active: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, sups, 1)
	assert.Equal(t, "active=true", gotQuery)
	assert.Equal(t, "Magnesium", sups[0].Name)
}

func TestLogIntakeNestedPath(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/supplements/sup1/logs", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "dosage", "omitted dosage must be absent")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"log1","supplement_id":"sup1"}`))
	})

	_, err := svcs.Supplements.LogIntake(context.Background(), "sup1", domain.SupplementLogCreate{
		TakenAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestJournalCreateRejectsBadScaleLocally(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the wire")
	})

	_, err := svcs.Journal.Create(context.Background(), domain.JournalEntryCreate{
		Date: "2024-03-01",
		Mood: intPtr(9),
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidPayload))
}

func TestJournalUpdatePartialBody(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/journal/j1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"notes": "slept badly"}, body)

		_, _ = w.Write([]byte(`{"id":"j1","user_id":"u1","date":"2024-03-01","notes":"slept badly"}`))
	})

	entry, err := svcs.Journal.Update(context.Background(), "j1", domain.JournalEntryPatch{
		Notes: strPtr("slept badly"),
	})
	require.NoError(t, err)
	require.NotNil(t, entry.Notes)
	assert.Equal(t, "slept badly", *entry.Notes)
}
