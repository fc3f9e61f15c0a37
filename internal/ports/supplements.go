package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// SupplementsService manages regimens and their nested intake logs.
type SupplementsService interface {
	List(ctx context.Context, f domain.SupplementFilter) ([]domain.Supplement, error)
	Create(ctx context.Context, create domain.SupplementCreate) (domain.Supplement, error)
	Update(ctx context.Context, id string, patch domain.SupplementPatch) (domain.Supplement, error)
	Delete(ctx context.Context, id string) error

	ListLogs(ctx context.Context, supplementID string, f domain.LogFilter) ([]domain.SupplementLog, error)
	LogIntake(ctx context.Context, supplementID string, create domain.SupplementLogCreate) (domain.SupplementLog, error)
}
