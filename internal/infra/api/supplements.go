package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Supplements struct {
	rc *httpclient.Client
}

var _ ports.SupplementsService = (*Supplements)(nil)

func (s *Supplements) List(ctx context.Context, f domain.SupplementFilter) ([]domain.Supplement, error) {
	var out []domain.Supplement
	err := s.rc.Get(ctx, httpclient.WithQuery("/supplements", supplementQuery(f)), &out)
	return out, err
}

func (s *Supplements) Create(ctx context.Context, create domain.SupplementCreate) (domain.Supplement, error) {
	var out domain.Supplement
	if err := checkPayload("supplements.create", create); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/supplements", create, &out)
	return out, err
}

func (s *Supplements) Update(ctx context.Context, id string, patch domain.SupplementPatch) (domain.Supplement, error) {
	var out domain.Supplement
	if err := checkPayload("supplements.update", patch); err != nil {
		return out, err
	}
	err := s.rc.Patch(ctx, "/supplements/"+id, patch, &out)
	return out, err
}

func (s *Supplements) Delete(ctx context.Context, id string) error {
	return s.rc.Delete(ctx, "/supplements/"+id)
}

func (s *Supplements) ListLogs(ctx context.Context, supplementID string, f domain.LogFilter) ([]domain.SupplementLog, error) {
	var out []domain.SupplementLog
	err := s.rc.Get(ctx, httpclient.WithQuery("/supplements/"+supplementID+"/logs", logQuery(f)), &out)
	return out, err
}

func (s *Supplements) LogIntake(ctx context.Context, supplementID string, create domain.SupplementLogCreate) (domain.SupplementLog, error) {
	var out domain.SupplementLog
	if err := checkPayload("supplements.log_intake", create); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/supplements/"+supplementID+"/logs", create, &out)
	return out, err
}
