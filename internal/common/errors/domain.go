package commonerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "VALIDATION"
	CategoryNotFound   ErrorCategory = "NOT_FOUND"
	CategoryInternal   ErrorCategory = "INTERNAL"
	CategoryExternal   ErrorCategory = "EXTERNAL"
)

type DomainError interface {
	error
	Code() string
	Category() ErrorCategory
	HTTPStatus() int
	Message() string
	TraceID() string
	Unwrap() error
	WithCause(cause error) DomainError
	WithTraceID(traceID string) DomainError
}

type domainError struct {
	code     string
	category ErrorCategory
	status   int
	message  string
	traceID  string
	cause    error
}

func (e *domainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *domainError) Code() string {
	return e.code
}

func (e *domainError) Category() ErrorCategory {
	return e.category
}

func (e *domainError) HTTPStatus() int {
	return e.status
}

func (e *domainError) Message() string {
	return e.message
}

func (e *domainError) TraceID() string {
	return e.traceID
}

func (e *domainError) Unwrap() error {
	return e.cause
}

// Is matches two domain errors by code so that errors.Is works on copies
// produced by WithCause and WithTraceID.
func (e *domainError) Is(target error) bool {
	var other *domainError
	if !errors.As(target, &other) {
		return false
	}
	return e.code == other.code
}

func (e *domainError) WithCause(cause error) DomainError {
	clone := *e
	clone.cause = cause
	return &clone
}

func (e *domainError) WithTraceID(traceID string) DomainError {
	clone := *e
	clone.traceID = traceID
	return &clone
}

func NewDomainError(code string, category ErrorCategory, status int, message string) DomainError {
	return &domainError{
		code:     code,
		category: category,
		status:   status,
		message:  message,
	}
}

func NewValidationError(code, message string) DomainError {
	return NewDomainError(code, CategoryValidation, http.StatusBadRequest, message)
}

func IsDomainError(err error) bool {
	var de DomainError
	return errors.As(err, &de)
}

func AsDomainError(err error) (DomainError, bool) {
	var de DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

var (
	ErrCircuitOpen = NewDomainError(
		"CIRCUIT_OPEN",
		CategoryExternal,
		http.StatusServiceUnavailable,
		"circuit breaker is open",
	)

	ErrServiceUnavailable = NewDomainError(
		"SERVICE_UNAVAILABLE",
		CategoryExternal,
		http.StatusServiceUnavailable,
		"service temporarily unavailable",
	)

	ErrInvalidPayload = NewValidationError(
		"INVALID_PAYLOAD",
		"invalid payload",
	)

	ErrUserNotFound = NewDomainError(
		"USER_NOT_FOUND",
		CategoryNotFound,
		http.StatusNotFound,
		"user not found",
	)

	ErrStoreError = NewDomainError(
		"STORE_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"storage operation failed",
	)

	ErrInternalError = NewDomainError(
		"INTERNAL_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"internal server error",
	)
)
