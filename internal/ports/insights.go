package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// InsightsService reads server-generated insights.
type InsightsService interface {
	List(ctx context.Context, f domain.InsightFilter) ([]domain.Insight, error)
	MarkRead(ctx context.Context, id string) (domain.Insight, error)
}
