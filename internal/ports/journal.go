package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// JournalService manages self-reported mood entries.
type JournalService interface {
	List(ctx context.Context, f domain.JournalFilter) ([]domain.JournalEntry, error)
	Create(ctx context.Context, create domain.JournalEntryCreate) (domain.JournalEntry, error)
	Update(ctx context.Context, id string, patch domain.JournalEntryPatch) (domain.JournalEntry, error)
	Delete(ctx context.Context, id string) error
}
