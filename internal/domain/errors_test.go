package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError(422, "value out of range")
	want := "api: value out of range (status 422)"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError(cause)

	if err.Status != 0 {
		t.Fatalf("expected status 0, got %d", err.Status)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved")
	}
}

func TestStatusPredicates(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
	}{
		{404, IsNotFound},
		{401, IsUnauthorized},
		{403, IsUnauthorized},
		{422, IsValidation},
		{500, IsServerError},
		{503, IsServerError},
	}

	for _, tc := range cases {
		err := fmt.Errorf("wrapped: %w", NewAPIError(tc.status, "boom"))
		if !tc.check(err) {
			t.Fatalf("predicate failed for status %d", tc.status)
		}
	}

	if IsNotFound(errors.New("plain")) {
		t.Fatalf("plain error must not match")
	}
	if IsServerError(NewAPIError(404, "missing")) {
		t.Fatalf("404 is not a server error")
	}
}

func TestOpErrorKind(t *testing.T) {
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Path: "vitalis.yaml",
		Err:  errors.New("bad yaml"),
	}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind")
	}
	if IsKind(err, KindInvalidPayload) {
		t.Fatalf("unexpected kind match")
	}
	if err.Error() == "" {
		t.Fatalf("expected message")
	}
}
