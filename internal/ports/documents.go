package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// DocumentsService uploads files and reads their parse state. Parsing
// itself happens server-side; the client only polls.
type DocumentsService interface {
	List(ctx context.Context, f domain.DocumentFilter) ([]domain.Document, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	Upload(ctx context.Context, upload domain.DocumentUpload) (domain.Document, error)
	Delete(ctx context.Context, id string) error
}
