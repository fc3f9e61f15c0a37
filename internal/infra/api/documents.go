package api

import (
	"context"
	"errors"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

var errIncompleteUpload = errors.New("file, filename and document_type are required")

type Documents struct {
	rc *httpclient.Client
}

var _ ports.DocumentsService = (*Documents)(nil)

func (s *Documents) List(ctx context.Context, f domain.DocumentFilter) ([]domain.Document, error) {
	var out []domain.Document
	err := s.rc.Get(ctx, httpclient.WithQuery("/documents", documentQuery(f)), &out)
	return out, err
}

func (s *Documents) Get(ctx context.Context, id string) (domain.Document, error) {
	var out domain.Document
	err := s.rc.Get(ctx, "/documents/"+id, &out)
	return out, err
}

func (s *Documents) Upload(ctx context.Context, upload domain.DocumentUpload) (domain.Document, error) {
	var out domain.Document
	if upload.File == nil || upload.Filename == "" || upload.DocumentType == "" {
		return out, &domain.OpError{
			Op:   "documents.upload",
			Kind: domain.KindInvalidPayload,
			Err:  errIncompleteUpload,
		}
	}
	err := s.rc.Upload(ctx, "/documents/upload", upload, &out)
	return out, err
}

func (s *Documents) Delete(ctx context.Context, id string) error {
	return s.rc.Delete(ctx, "/documents/"+id)
}
