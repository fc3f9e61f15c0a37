package domain

import "time"

// ConnectedDevice models one external data source per (user, source) pair.
// SyncStatus is server-defined free text; there is no closed enumeration.
type ConnectedDevice struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Source       string     `json:"source"`
	SyncStatus   string     `json:"sync_status"`
	LastSyncedAt *time.Time `json:"last_synced_at"`
	ConnectedAt  time.Time  `json:"connected_at"`
}

// DeviceConnect registers a new data source for the current user.
type DeviceConnect struct {
	Source string `json:"source" validate:"required"`
}
