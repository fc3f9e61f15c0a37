package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// MeasurementsService logs and lists body measurements.
type MeasurementsService interface {
	List(ctx context.Context, f domain.MeasurementFilter) ([]domain.Measurement, error)
	Log(ctx context.Context, create domain.MeasurementCreate) (domain.Measurement, error)
	Delete(ctx context.Context, id string) error
}
