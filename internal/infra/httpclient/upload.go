package httpclient

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// Upload is the parallel path for multipart bodies. It never sets a JSON
// content type; the multipart writer computes the boundary. Response
// normalization mirrors the JSON pipeline.
func (c *Client) Upload(ctx context.Context, path string, upload domain.DocumentUpload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", upload.Filename)
	if err != nil {
		return uploadErr(err)
	}
	if _, err := io.Copy(part, upload.File); err != nil {
		return uploadErr(err)
	}
	if err := w.WriteField("document_type", upload.DocumentType); err != nil {
		return uploadErr(err)
	}
	if upload.ProviderName != "" {
		if err := w.WriteField("provider_name", upload.ProviderName); err != nil {
			return uploadErr(err)
		}
	}
	if err := w.Close(); err != nil {
		return uploadErr(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Resolve(path), &buf)
	if err != nil {
		return &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setCommonHeaders(req)

	return c.send(req, out)
}

func uploadErr(err error) error {
	return &domain.OpError{
		Op:   "httpclient.upload",
		Kind: domain.KindInvalidPayload,
		Err:  err,
	}
}
