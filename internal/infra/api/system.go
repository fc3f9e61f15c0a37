package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

// System reaches the liveness endpoint outside the versioned API root, so
// it passes an absolute URL through the pipeline.
type System struct {
	rc *httpclient.Client
}

var _ ports.SystemService = (*System)(nil)

func (s *System) Health(ctx context.Context) (domain.Health, error) {
	var out domain.Health
	err := s.rc.Get(ctx, s.rc.HealthURL(), &out)
	return out, err
}
