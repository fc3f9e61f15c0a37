package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Wearables struct {
	rc *httpclient.Client
}

var _ ports.WearablesService = (*Wearables)(nil)

func (s *Wearables) ListDaily(ctx context.Context, f domain.RangeFilter) ([]domain.WearableDaily, error) {
	var out []domain.WearableDaily
	err := s.rc.Get(ctx, httpclient.WithQuery("/wearables/daily", rangeQuery(f)), &out)
	return out, err
}

func (s *Wearables) ListSleep(ctx context.Context, f domain.RangeFilter) ([]domain.SleepSession, error) {
	var out []domain.SleepSession
	err := s.rc.Get(ctx, httpclient.WithQuery("/wearables/sleep", rangeQuery(f)), &out)
	return out, err
}

func (s *Wearables) ListActivities(ctx context.Context, f domain.RangeFilter) ([]domain.WearableActivity, error) {
	var out []domain.WearableActivity
	err := s.rc.Get(ctx, httpclient.WithQuery("/wearables/activities", rangeQuery(f)), &out)
	return out, err
}
