package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels every *Error unwraps to, so callers can branch with errors.Is.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failure")
	ErrConflict    = errors.New("conflict")
)

// Error is a structured application error carrying its HTTP status.
type Error struct {
	Kind    string `json:"kind,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil && !isSentinel(e.Err) {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a missing entity, e.g. `State with technical name "bogus-state" not found`.
func NotFound(kind, field, value string) *Error {
	return &Error{
		Kind:    kind,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with %s %q not found", kind, field, value),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// Validation reports malformed caller input.
func Validation(format string, args ...any) *Error {
	return &Error{
		Code:    "VALIDATION_FAILED",
		Message: fmt.Sprintf(format, args...),
		Status:  http.StatusBadRequest,
		Err:     ErrValidation,
	}
}

// Persistence wraps a storage failure. Both ErrPersistence and the cause stay reachable via errors.Is.
func Persistence(op string, err error) *Error {
	return &Error{
		Code:    "PERSISTENCE_FAILURE",
		Message: op,
		Status:  http.StatusInternalServerError,
		Err:     fmt.Errorf("%w: %w", ErrPersistence, err),
	}
}

func Conflict(message string) *Error {
	return &Error{
		Code:    "CONFLICT",
		Message: message,
		Status:  http.StatusConflict,
		Err:     ErrConflict,
	}
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message of err. Persistence details never leak.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Status < http.StatusInternalServerError {
		return appErr.Message
	}
	return "the server encountered a problem"
}

func isSentinel(err error) bool {
	return err == ErrNotFound || err == ErrValidation || err == ErrConflict
}
