package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// DevicesService manages connected wearable data sources.
type DevicesService interface {
	List(ctx context.Context) ([]domain.ConnectedDevice, error)
	Connect(ctx context.Context, req domain.DeviceConnect) (domain.ConnectedDevice, error)
	Disconnect(ctx context.Context, id string) error
	Sync(ctx context.Context, id string) (domain.ConnectedDevice, error)
}
