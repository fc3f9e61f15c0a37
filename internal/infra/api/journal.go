package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Journal struct {
	rc *httpclient.Client
}

var _ ports.JournalService = (*Journal)(nil)

func (s *Journal) List(ctx context.Context, f domain.JournalFilter) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	err := s.rc.Get(ctx, httpclient.WithQuery("/journal", journalQuery(f)), &out)
	return out, err
}

func (s *Journal) Create(ctx context.Context, create domain.JournalEntryCreate) (domain.JournalEntry, error) {
	var out domain.JournalEntry
	if err := checkPayload("journal.create", create); err != nil {
		return out, err
	}
	err := s.rc.Post(ctx, "/journal", create, &out)
	return out, err
}

func (s *Journal) Update(ctx context.Context, id string, patch domain.JournalEntryPatch) (domain.JournalEntry, error) {
	var out domain.JournalEntry
	if err := checkPayload("journal.update", patch); err != nil {
		return out, err
	}
	err := s.rc.Patch(ctx, "/journal/"+id, patch, &out)
	return out, err
}

func (s *Journal) Delete(ctx context.Context, id string) error {
	return s.rc.Delete(ctx, "/journal/"+id)
}
