package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Metrics struct {
	rc *httpclient.Client
}

var _ ports.MetricsService = (*Metrics)(nil)

func (s *Metrics) List(ctx context.Context) ([]domain.CustomMetric, error) {
	var out []domain.CustomMetric
	err := s.rc.Get(ctx, "/metrics", &out)
	return out, err
}

func (s *Metrics) Create(ctx context.Context, create domain.CustomMetricCreate) (domain.CustomMetric, error) {
	var out domain.CustomMetric
	if err := checkPayload("metrics.create", create); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/metrics", create, &out)
	return out, err
}

func (s *Metrics) Update(ctx context.Context, id string, patch domain.CustomMetricPatch) (domain.CustomMetric, error) {
	var out domain.CustomMetric
	if err := checkPayload("metrics.update", patch); err != nil {
		return out, err
	}
	err := s.rc.Patch(ctx, "/metrics/"+id, patch, &out)
	return out, err
}

func (s *Metrics) Delete(ctx context.Context, id string) error {
	return s.rc.Delete(ctx, "/metrics/"+id)
}

func (s *Metrics) ListEntries(ctx context.Context, metricID string, f domain.EntryFilter) ([]domain.CustomMetricEntry, error) {
	var out []domain.CustomMetricEntry
	err := s.rc.Get(ctx, httpclient.WithQuery("/metrics/"+metricID+"/entries", entryQuery(f)), &out)
	return out, err
}

// AddEntry enforces the one-value rule before the request is sent; which
// value field matches the metric's data type is checked server-side.
func (s *Metrics) AddEntry(ctx context.Context, metricID string, create domain.CustomMetricEntryCreate) (domain.CustomMetricEntry, error) {
	var out domain.CustomMetricEntry
	if err := checkPayload("metrics.add_entry", create); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/metrics/"+metricID+"/entries", create, &out)
	return out, err
}
