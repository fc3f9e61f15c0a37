package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// WearablesService lists observational records ingested from devices.
type WearablesService interface {
	ListDaily(ctx context.Context, f domain.RangeFilter) ([]domain.WearableDaily, error)
	ListSleep(ctx context.Context, f domain.RangeFilter) ([]domain.SleepSession, error)
	ListActivities(ctx context.Context, f domain.RangeFilter) ([]domain.WearableActivity, error)
}
