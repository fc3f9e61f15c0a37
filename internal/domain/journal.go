package domain

import "time"

// JournalEntry is one day's self-reported mood record. Scales run 1-5.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Mood      *int      `json:"mood"`
	Energy    *int      `json:"energy"`
	Stress    *int      `json:"stress"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JournalEntryCreate struct {
	Date   string  `json:"date" validate:"required"`
	Mood   *int    `json:"mood,omitempty" validate:"omitempty,min=1,max=5"`
	Energy *int    `json:"energy,omitempty" validate:"omitempty,min=1,max=5"`
	Stress *int    `json:"stress,omitempty" validate:"omitempty,min=1,max=5"`
	Notes  *string `json:"notes,omitempty"`
}

type JournalEntryPatch struct {
	Mood   *int    `json:"mood,omitempty" validate:"omitempty,min=1,max=5"`
	Energy *int    `json:"energy,omitempty" validate:"omitempty,min=1,max=5"`
	Stress *int    `json:"stress,omitempty" validate:"omitempty,min=1,max=5"`
	Notes  *string `json:"notes,omitempty"`
}
