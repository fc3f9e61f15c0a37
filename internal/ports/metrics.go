package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// MetricsService manages user-defined metrics and their entries.
type MetricsService interface {
	List(ctx context.Context) ([]domain.CustomMetric, error)
	Create(ctx context.Context, create domain.CustomMetricCreate) (domain.CustomMetric, error)
	Update(ctx context.Context, id string, patch domain.CustomMetricPatch) (domain.CustomMetric, error)
	Delete(ctx context.Context, id string) error

	ListEntries(ctx context.Context, metricID string, f domain.EntryFilter) ([]domain.CustomMetricEntry, error)
	AddEntry(ctx context.Context, metricID string, create domain.CustomMetricEntryCreate) (domain.CustomMetricEntry, error)
}
