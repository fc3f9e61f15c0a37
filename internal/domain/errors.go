package domain

import (
	"errors"
	"fmt"
)

// APIError is the single typed failure surfaced for any request that did
// not succeed: a non-2xx response carries the HTTP status and the server's
// detail message; a transport-level failure carries Status 0 with the
// underlying error preserved via Unwrap. Callers distinguish cases by
// inspecting Status only.
type APIError struct {
	Status int
	Detail string

	cause error
}

// NewAPIError builds the error for a non-2xx response.
func NewAPIError(status int, detail string) *APIError {
	return &APIError{Status: status, Detail: detail}
}

// NewTransportError wraps a network-level failure where no HTTP status
// exists.
func NewTransportError(err error) *APIError {
	return &APIError{Status: 0, Detail: err.Error(), cause: err}
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Status == 0 {
		return fmt.Sprintf("api: transport failure: %s", e.Detail)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Detail, e.Status)
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// IsNotFound reports a 404 from the server.
func IsNotFound(err error) bool { return statusIs(err, 404) }

// IsUnauthorized reports a 401 or 403 from the server.
func IsUnauthorized(err error) bool { return statusIs(err, 401) || statusIs(err, 403) }

// IsValidation reports a 422 from the server.
func IsValidation(err error) bool { return statusIs(err, 422) }

// IsServerError reports any 5xx from the server.
func IsServerError(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status >= 500 && ae.Status <= 599
	}
	return false
}

func statusIs(err error, status int) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status == status
	}
	return false
}

// ErrorKind is a coarse-grained categorization for client-side faults.
type ErrorKind string

const (
	KindInvalidConfig  ErrorKind = "invalid_config"
	KindInvalidPayload ErrorKind = "invalid_payload"
	KindNotFound       ErrorKind = "not_found"
)

// OpError wraps an error raised before a request left the client: a bad
// payload, an unreadable config file, an undecodable response body.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify client-side faults without depending on
// infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
