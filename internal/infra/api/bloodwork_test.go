package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func TestGetPanelWithMarkers(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/blood-work/panels/p1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": "p1", "user_id": "u1", "test_date": "2024-02-10", "lab_name": "Quest",
			"markers": [
				{"id":"m1","panel_id":"p1","biomarker_id":"bm-ferritin","value":18.2,"unit":"ng/mL","reference_range_low":30,"reference_range_high":300,"flag":"low"}
			]
		}`))
	})

	panel, err := svcs.Bloodwork.GetPanel(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, panel.Markers, 1)

	m := panel.Markers[0]
	assert.Equal(t, domain.FlagLow, m.Flag)
	require.NotNil(t, m.ReferenceRangeLow)
	assert.Equal(t, 30.0, *m.ReferenceRangeLow)
}

func TestAddMarkerNestedPath(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/blood-work/panels/p1/markers", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bm-ferritin", body["biomarker_id"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"m2","panel_id":"p1","biomarker_id":"bm-ferritin","value":42,"unit":"ng/mL","flag":"normal"}`))
	})

	marker, err := svcs.Bloodwork.AddMarker(context.Background(), "p1", domain.BloodMarkerCreate{
		BiomarkerID: "bm-ferritin",
		Value:       42,
		Unit:        "ng/mL",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FlagNormal, marker.Flag)
}

func TestMarkerTrendQuery(t *testing.T) {
	var gotQuery string
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/blood-work/markers", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := svcs.Bloodwork.MarkerTrend(context.Background(), domain.TrendFilter{
		BiomarkerID: "bm-ferritin",
		StartDate:   "2023-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "biomarker_id=bm-ferritin&start_date=2023-01-01", gotQuery)
}

func TestDeletePanelRepeatSurfaces404(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"panel not found","status_code":404}`))
	})

	err := svcs.Bloodwork.DeletePanel(context.Background(), "gone")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestListBiomarkersCategoryFilter(t *testing.T) {
	var gotQuery string
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/blood-work/biomarkers", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"id":"bm-ferritin","name":"Ferritin","unit":"ng/mL","category":"iron"}]`))
	})

	dict, err := svcs.Bloodwork.ListBiomarkers(context.Background(), domain.BiomarkerFilter{Category: "iron"})
	require.NoError(t, err)
	require.Len(t, dict, 1)
	assert.Equal(t, "category=iron", gotQuery)
	assert.Equal(t, "Ferritin", dict[0].Name)
}
