package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// GoalsService manages metric targets and their server-appended alerts.
type GoalsService interface {
	List(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error)
	Get(ctx context.Context, id string) (domain.Goal, error)
	Create(ctx context.Context, create domain.GoalCreate) (domain.Goal, error)
	Update(ctx context.Context, id string, patch domain.GoalPatch) (domain.Goal, error)
	Delete(ctx context.Context, id string) error

	ListAlerts(ctx context.Context, goalID string, f domain.AlertFilter) ([]domain.GoalAlert, error)
	AcknowledgeAlert(ctx context.Context, goalID, alertID string) (domain.GoalAlert, error)
}
