package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
)

// newTestServices spins up a stub server and a service bundle against it.
func newTestServices(t *testing.T, handler http.HandlerFunc) (*Services, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	rc, err := httpclient.New(httpclient.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(rc), server
}

func intPtr(n int) *int           { return &n }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
