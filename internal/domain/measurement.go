package domain

import "time"

// Measurement is a self-reported body measurement.
type Measurement struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Type       string    `json:"type"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	MeasuredAt time.Time `json:"measured_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// MeasurementCreate logs a new measurement.
type MeasurementCreate struct {
	Type       string    `json:"type" validate:"required"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit" validate:"required"`
	MeasuredAt time.Time `json:"measured_at"`
}
