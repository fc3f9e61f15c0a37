package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func TestUploadThroughService(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/documents/upload", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "lab_report", r.FormValue("document_type"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"d1","filename":"panel.pdf","document_type":"lab_report","parse_status":"pending"}`))
	})

	doc, err := svcs.Documents.Upload(context.Background(), domain.DocumentUpload{
		File:         strings.NewReader("%PDF"),
		Filename:     "panel.pdf",
		DocumentType: "lab_report",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ParsePending, doc.ParseStatus)
	assert.False(t, doc.ParseStatus.Terminal())
}

func TestUploadRequiresFileAndType(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the wire")
	})

	_, err := svcs.Documents.Upload(context.Background(), domain.DocumentUpload{
		Filename: "panel.pdf",
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidPayload))
}

func TestListDocumentsStatusFilter(t *testing.T) {
	var gotQuery string
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/documents", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"id":"d9","parse_status":"failed","parse_error":"unreadable scan"}]`))
	})

	docs, err := svcs.Documents.List(context.Background(), domain.DocumentFilter{
		ParseStatus: "failed",
		Limit:       intPtr(10),
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "limit=10&parse_status=failed", gotQuery)
	assert.True(t, docs[0].ParseStatus.Terminal())
	require.NotNil(t, docs[0].ParseError)
}
