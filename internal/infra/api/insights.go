package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Insights struct {
	rc *httpclient.Client
}

var _ ports.InsightsService = (*Insights)(nil)

func (s *Insights) List(ctx context.Context, f domain.InsightFilter) ([]domain.Insight, error) {
	var out []domain.Insight
	err := s.rc.Get(ctx, httpclient.WithQuery("/insights", insightQuery(f)), &out)
	return out, err
}

func (s *Insights) MarkRead(ctx context.Context, id string) (domain.Insight, error) {
	var out domain.Insight
	err := s.rc.Post(ctx, "/insights/"+id+"/read", nil, &out)
	return out, err
}
