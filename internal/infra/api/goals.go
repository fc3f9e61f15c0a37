package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Goals struct {
	rc *httpclient.Client
}

var _ ports.GoalsService = (*Goals)(nil)

func (s *Goals) List(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error) {
	var out []domain.Goal
	err := s.rc.Get(ctx, httpclient.WithQuery("/goals", goalQuery(f)), &out)
	return out, err
}

func (s *Goals) Get(ctx context.Context, id string) (domain.Goal, error) {
	var out domain.Goal
	err := s.rc.Get(ctx, "/goals/"+id, &out)
	return out, err
}

func (s *Goals) Create(ctx context.Context, create domain.GoalCreate) (domain.Goal, error) {
	var out domain.Goal
	if err := checkPayload("goals.create", create); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/goals", create, &out)
	return out, err
}

func (s *Goals) Update(ctx context.Context, id string, patch domain.GoalPatch) (domain.Goal, error) {
	var out domain.Goal
	if err := checkPayload("goals.update", patch); err != nil {
		return out, err
	}
	err := s.rc.Patch(ctx, "/goals/"+id, patch, &out)
	return out, err
}

func (s *Goals) Delete(ctx context.Context, id string) error {
	return s.rc.Delete(ctx, "/goals/"+id)
}

func (s *Goals) ListAlerts(ctx context.Context, goalID string, f domain.AlertFilter) ([]domain.GoalAlert, error) {
	var out []domain.GoalAlert
	err := s.rc.Get(ctx, httpclient.WithQuery("/goals/"+goalID+"/alerts", alertQuery(f)), &out)
	return out, err
}

func (s *Goals) AcknowledgeAlert(ctx context.Context, goalID, alertID string) (domain.GoalAlert, error) {
	var out domain.GoalAlert
	err := s.rc.Post(ctx, "/goals/"+goalID+"/alerts/"+alertID+"/ack", nil, &out)
	return out, err
}
