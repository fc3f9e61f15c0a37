package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func newTestClient(t *testing.T, base string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: base})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestResolveRelative(t *testing.T) {
	c := newTestClient(t, "https://api.vitalis.dev/")

	got := c.Resolve("/users/me")
	want := "https://api.vitalis.dev/api/v1/users/me"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if c.Resolve("users/me") != want {
		t.Fatalf("expected leading slash to be added")
	}
}

func TestResolveAbsolutePassesThrough(t *testing.T) {
	c := newTestClient(t, "https://api.vitalis.dev")

	abs := "https://api.vitalis.dev/health"
	if got := c.Resolve(abs); got != abs {
		t.Fatalf("expected %q unchanged, got %q", abs, got)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestGetDecodesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/me" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected json content type, got %q", ct)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u1","email":"a@b.com","name":"Ana","role":"owner"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	var user domain.User
	if err := c.Get(context.Background(), "/users/me", &user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestDeleteNoContentResolvesVoid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if err := c.Delete(context.Background(), "/goals/g1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNoContentIgnoresBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	var out domain.User
	if err := c.Get(context.Background(), "/whatever", &out); err != nil {
		t.Fatalf("expected 204 to resolve void, got %v", err)
	}
	if out.ID != "" {
		t.Fatalf("expected zero value on 204")
	}
}

func TestErrorBodyParsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"detail":      "value out of range",
			"status_code": 422,
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	err := c.Post(context.Background(), "/measurements", map[string]any{"value": -1}, nil)
	var ae *domain.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if ae.Status != 422 || ae.Detail != "value out of range" {
		t.Fatalf("unexpected error fields: %+v", ae)
	}
}

func TestErrorBodyFallbackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>nope</html>"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	err := c.Patch(context.Background(), "/goals/g1", map[string]any{}, nil)
	var ae *domain.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if ae.Status != 500 || ae.Detail != "Internal Server Error" {
		t.Fatalf("unexpected error fields: %+v", ae)
	}
}

func TestTransportFailure(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")

	err := c.Get(context.Background(), "/users/me", nil)
	var ae *domain.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if ae.Status != 0 {
		t.Fatalf("expected status 0 for transport failure, got %d", ae.Status)
	}
	if errors.Unwrap(ae) == nil {
		t.Fatalf("expected cause to be preserved")
	}
}

func TestBearerTokenInjectedWhenPresent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c, err := New(Config{
		BaseURL:     server.URL,
		TokenSource: func() string { return "tok-123" },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Get(context.Background(), "/users/me", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", got)
	}
}

func TestNoAuthHeaderByDefault(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if err := c.Get(context.Background(), "/users/me", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected unauthenticated request, got %q", got)
	}
}

func TestCallerHeadersMerged(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Client-Feature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	err := c.Get(context.Background(), "/users/me", nil, WithHeader("X-Client-Feature", "beta"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "beta" {
		t.Fatalf("expected merged header, got %q", got)
	}
}

func TestResponseValidationOptIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":"u1","unit_system":"stone","time_format":"12h","week_start":"monday","glucose_unit":"mg_dl"}`))
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL, Validate: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var prefs domain.UserPreferences
	gotErr := c.Get(context.Background(), "/users/me/preferences", &prefs)
	if !domain.IsKind(gotErr, domain.KindInvalidPayload) {
		t.Fatalf("expected invalid_payload, got %v", gotErr)
	}
}

func TestWithQuery(t *testing.T) {
	if got := WithQuery("/wearables/daily", url.Values{}); got != "/wearables/daily" {
		t.Fatalf("expected empty values to leave path untouched, got %q", got)
	}

	v := url.Values{}
	v.Set("start_date", "2024-01-01")
	got := WithQuery("/wearables/daily", v)
	if got != "/wearables/daily?start_date=2024-01-01" {
		t.Fatalf("unexpected query path %q", got)
	}
}
