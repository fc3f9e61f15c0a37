package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// BloodworkService covers panels, their markers, the cross-panel trend
// view and the canonical biomarker dictionary.
type BloodworkService interface {
	ListPanels(ctx context.Context, f domain.PanelFilter) ([]domain.BloodPanel, error)
	GetPanel(ctx context.Context, id string) (domain.BloodPanel, error)
	CreatePanel(ctx context.Context, create domain.BloodPanelCreate) (domain.BloodPanel, error)
	UpdatePanel(ctx context.Context, id string, patch domain.BloodPanelPatch) (domain.BloodPanel, error)
	DeletePanel(ctx context.Context, id string) error

	ListMarkers(ctx context.Context, panelID string) ([]domain.BloodMarker, error)
	AddMarker(ctx context.Context, panelID string, create domain.BloodMarkerCreate) (domain.BloodMarker, error)

	MarkerTrend(ctx context.Context, f domain.TrendFilter) ([]domain.BloodMarker, error)
	ListBiomarkers(ctx context.Context, f domain.BiomarkerFilter) ([]domain.Biomarker, error)
}
