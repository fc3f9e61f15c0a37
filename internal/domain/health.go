package domain

// Health is the liveness payload served outside the versioned API.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
