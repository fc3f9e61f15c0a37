package domain

import "time"

// Supplement is a user-defined supplement regimen.
type Supplement struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Dosage    float64   `json:"dosage"`
	Unit      string    `json:"unit"`
	Frequency string    `json:"frequency"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplementLog is one recorded intake, nested under its supplement.
type SupplementLog struct {
	ID           string    `json:"id"`
	SupplementID string    `json:"supplement_id"`
	TakenAt      time.Time `json:"taken_at"`
	Dosage       *float64  `json:"dosage"`
	Notes        *string   `json:"notes"`
}

type SupplementCreate struct {
	Name      string  `json:"name" validate:"required"`
	Dosage    float64 `json:"dosage"`
	Unit      string  `json:"unit"`
	Frequency string  `json:"frequency"`
}

type SupplementPatch struct {
	Name      *string  `json:"name,omitempty"`
	Dosage    *float64 `json:"dosage,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	Frequency *string  `json:"frequency,omitempty"`
	Active    *bool    `json:"active,omitempty"`
}

// SupplementLogCreate records an intake; dosage defaults server-side to the
// supplement's configured dosage when omitted.
type SupplementLogCreate struct {
	TakenAt time.Time `json:"taken_at"`
	Dosage  *float64  `json:"dosage,omitempty"`
	Notes   *string   `json:"notes,omitempty"`
}
