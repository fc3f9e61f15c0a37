package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// SystemService covers endpoints outside the versioned API.
type SystemService interface {
	Health(ctx context.Context) (domain.Health, error)
}
