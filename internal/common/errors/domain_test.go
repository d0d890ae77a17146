package commonerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestDomainError_WithCauseKeepsIdentity(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrStoreError.WithCause(cause)

	if !errors.Is(err, ErrStoreError) {
		t.Error("expected errors.Is to match by code")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrapped")
	}
	if err.Error() != "storage operation failed: disk full" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if ErrStoreError.Unwrap() != nil {
		t.Error("expected sentinel to stay untouched")
	}
}

func TestDomainError_WithTraceID(t *testing.T) {
	err := ErrUserNotFound.WithTraceID("trace-1")

	if err.TraceID() != "trace-1" || ErrUserNotFound.TraceID() != "" {
		t.Errorf("unexpected trace ids %q / %q", err.TraceID(), ErrUserNotFound.TraceID())
	}
	if err.HTTPStatus() != http.StatusNotFound || err.Category() != CategoryNotFound {
		t.Errorf("unexpected status/category %d %s", err.HTTPStatus(), err.Category())
	}
}

func TestDomainError_DifferentCodesDoNotMatch(t *testing.T) {
	if errors.Is(ErrUserNotFound, ErrStoreError) {
		t.Error("expected different codes not to match")
	}
}

func TestAsDomainError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewValidationError("INVALID_LIMIT", "bad limit"))

	de, ok := AsDomainError(wrapped)
	if !ok {
		t.Fatal("expected domain error")
	}
	if de.Code() != "INVALID_LIMIT" || de.HTTPStatus() != http.StatusBadRequest || de.Category() != CategoryValidation {
		t.Errorf("unexpected domain error %+v", de)
	}

	if IsDomainError(errors.New("plain")) {
		t.Error("expected plain error not to be a domain error")
	}
}
