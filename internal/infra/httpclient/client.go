// Package httpclient is the single choke point for every Vitalis API call:
// it resolves paths against the versioned root, assembles headers, issues
// exactly one request per call and normalizes success and failure. No
// retries, no caching, no request coalescing.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

const apiPrefix = "/api/v1"

var errMissingBaseURL = errors.New("base URL is required")

// TokenSource supplies a bearer token per request. A nil source (the
// default) sends unauthenticated requests; session integration plugs in
// here later.
type TokenSource func() string

// Config is injected at construction time; there is no shared global
// base-URL state, so tests can run independently configured clients.
type Config struct {
	// BaseURL is the server root, without the /api/v1 suffix.
	BaseURL string

	TokenSource TokenSource
	UserAgent   string

	// Validate runs decoded response bodies through domain.Validate so
	// malformed payloads fail fast instead of surfacing at point of use.
	Validate bool

	// HTTPClient overrides the default pooled transport.
	HTTPClient *http.Client
}

// Client executes requests against one configured server.
type Client struct {
	base      string
	apiRoot   string
	token     TokenSource
	userAgent string
	validate  bool
	http      *http.Client
}

func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.new",
			Kind: domain.KindInvalidConfig,
			Err:  errMissingBaseURL,
		}
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = NewHTTPClient(DefaultTransportConfig())
	}

	return &Client{
		base:      base,
		apiRoot:   base + apiPrefix,
		token:     cfg.TokenSource,
		userAgent: cfg.UserAgent,
		validate:  cfg.Validate,
		http:      hc,
	}, nil
}

// BaseURL returns the configured server root (no /api/v1 suffix).
func (c *Client) BaseURL() string { return c.base }

// HealthURL is the unversioned liveness endpoint.
func (c *Client) HealthURL() string { return c.base + "/health" }

// Resolve maps a path to a full URL. Absolute URLs pass through verbatim;
// relative paths are joined to {base}/api/v1.
func (c *Client) Resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.apiRoot + path
}

// RequestOption mutates the outgoing request before it is sent.
type RequestOption func(*http.Request)

// WithHeader merges a caller-supplied header into the request.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// Get issues a GET and decodes the JSON response into out (may be nil).
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post JSON-encodes body (nil allowed) and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, opts...)
}

// Patch JSON-encodes a partial body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out, opts...)
}

// Delete issues a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, opts...)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &domain.OpError{
				Op:   "httpclient.encode",
				Kind: domain.KindInvalidPayload,
				Err:  err,
			}
		}
		reader = bytes.NewReader(payload)
	}
	return c.do(ctx, method, path, reader, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any, opts ...RequestOption) error {
	req, err := http.NewRequestWithContext(ctx, method, c.Resolve(path), body)
	if err != nil {
		return &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)
	for _, opt := range opts {
		opt(req)
	}

	return c.send(req, out)
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
}

// send issues exactly one request and normalizes the outcome. Transport
// failures, non-2xx statuses and undecodable bodies each map to a typed
// error; nothing is swallowed or retried.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, data)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &domain.OpError{
			Op:   "httpclient.decode",
			Kind: domain.KindInvalidPayload,
			Err:  err,
		}
	}

	if c.validate {
		if err := domain.Validate(out); err != nil {
			return &domain.OpError{
				Op:   "httpclient.decode",
				Kind: domain.KindInvalidPayload,
				Err:  err,
			}
		}
	}
	return nil
}

// apiError parses the server's {detail, status_code} shape, falling back to
// the generic status text when the body is not that shape (HTML error
// pages, proxies).
func apiError(status int, body []byte) *domain.APIError {
	var payload struct {
		Detail     string `json:"detail"`
		StatusCode int    `json:"status_code"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return domain.NewAPIError(status, payload.Detail)
	}
	return domain.NewAPIError(status, http.StatusText(status))
}

// WithQuery appends encoded query parameters to a path. Empty values sets
// leave the path untouched so absence stays distinguishable on the wire.
func WithQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
