package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Bloodwork struct {
	rc *httpclient.Client
}

var _ ports.BloodworkService = (*Bloodwork)(nil)

func (s *Bloodwork) ListPanels(ctx context.Context, f domain.PanelFilter) ([]domain.BloodPanel, error) {
	var out []domain.BloodPanel
	err := s.rc.Get(ctx, httpclient.WithQuery("/blood-work/panels", panelQuery(f)), &out)
	return out, err
}

func (s *Bloodwork) GetPanel(ctx context.Context, id string) (domain.BloodPanel, error) {
	var out domain.BloodPanel
	err := s.rc.Get(ctx, "/blood-work/panels/"+id, &out)
	return out, err
}

func (s *Bloodwork) CreatePanel(ctx context.Context, create domain.BloodPanelCreate) (domain.BloodPanel, error) {
	var out domain.BloodPanel
	if err := checkPayload("bloodwork.create_panel", create); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/blood-work/panels", create, &out)
	return out, err
}

func (s *Bloodwork) UpdatePanel(ctx context.Context, id string, patch domain.BloodPanelPatch) (domain.BloodPanel, error) {
	var out domain.BloodPanel
	if err := checkPayload("bloodwork.update_panel", patch); err != nil {
		return out, err
	}
	err := s.rc.Patch(ctx, "/blood-work/panels/"+id, patch, &out)
	return out, err
}

func (s *Bloodwork) DeletePanel(ctx context.Context, id string) error {
	return s.rc.Delete(ctx, "/blood-work/panels/"+id)
}

func (s *Bloodwork) ListMarkers(ctx context.Context, panelID string) ([]domain.BloodMarker, error) {
	var out []domain.BloodMarker
	err := s.rc.Get(ctx, "/blood-work/panels/"+panelID+"/markers", &out)
	return out, err
}

func (s *Bloodwork) AddMarker(ctx context.Context, panelID string, create domain.BloodMarkerCreate) (domain.BloodMarker, error) {
	var out domain.BloodMarker
	if err := checkPayload("bloodwork.add_marker", create); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/blood-work/panels/"+panelID+"/markers", create, &out)
	return out, err
}

// MarkerTrend is the cross-panel history for one biomarker, scoped by the
// biomarker foreign key rather than the owning panel.
func (s *Bloodwork) MarkerTrend(ctx context.Context, f domain.TrendFilter) ([]domain.BloodMarker, error) {
	var out []domain.BloodMarker
	err := s.rc.Get(ctx, httpclient.WithQuery("/blood-work/markers", trendQuery(f)), &out)
	return out, err
}

func (s *Bloodwork) ListBiomarkers(ctx context.Context, f domain.BiomarkerFilter) ([]domain.Biomarker, error) {
	var out []domain.Biomarker
	err := s.rc.Get(ctx, httpclient.WithQuery("/blood-work/biomarkers", biomarkerQuery(f)), &out)
	return out, err
}
