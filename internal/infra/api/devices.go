package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Devices struct {
	rc *httpclient.Client
}

var _ ports.DevicesService = (*Devices)(nil)

func (s *Devices) List(ctx context.Context) ([]domain.ConnectedDevice, error) {
	var out []domain.ConnectedDevice
	err := s.rc.Get(ctx, "/devices", &out)
	return out, err
}

func (s *Devices) Connect(ctx context.Context, req domain.DeviceConnect) (domain.ConnectedDevice, error) {
	var out domain.ConnectedDevice
	if err := checkPayload("devices.connect", req); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/devices", req, &out)
	return out, err
}

func (s *Devices) Disconnect(ctx context.Context, id string) error {
	return s.rc.Delete(ctx, "/devices/"+id)
}

// Sync asks the server to pull from the source now; the returned device
// carries the server's current sync_status.
func (s *Devices) Sync(ctx context.Context, id string) (domain.ConnectedDevice, error) {
	var out domain.ConnectedDevice
	err := s.rc.Post(ctx, "/devices/"+id+"/sync", nil, &out)
	return out, err
}
