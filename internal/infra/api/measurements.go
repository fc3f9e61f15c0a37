package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Measurements struct {
	rc *httpclient.Client
}

var _ ports.MeasurementsService = (*Measurements)(nil)

func (s *Measurements) List(ctx context.Context, f domain.MeasurementFilter) ([]domain.Measurement, error) {
	var out []domain.Measurement
	err := s.rc.Get(ctx, httpclient.WithQuery("/measurements", measurementQuery(f)), &out)
	return out, err
}

func (s *Measurements) Log(ctx context.Context, create domain.MeasurementCreate) (domain.Measurement, error) {
	var out domain.Measurement
	if err := checkPayload("measurements.log", create); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/measurements", create, &out)
	return out, err
}

func (s *Measurements) Delete(ctx context.Context, id string) error {
	return s.rc.Delete(ctx, "/measurements/"+id)
}
