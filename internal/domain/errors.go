package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown enum value).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ValidationError carries the client-facing message for a rejected payload.
// errors.Is(err, ErrValidation) reports true for any *ValidationError.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return "validation error: " + e.Message }

// Is lets callers match a *ValidationError against the ErrValidation sentinel.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError carries the client-facing message for a missing resource or
// a relationship that does not hold (e.g. a benefit that belongs to another card).
// errors.Is(err, ErrNotFound) reports true for any *NotFoundError.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return "not found: " + e.Message }

// Is lets callers match a *NotFoundError against the ErrNotFound sentinel.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Invalid returns a *ValidationError with the given message.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// Invalidf returns a *ValidationError with a formatted message.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Missing returns a *NotFoundError with the given message.
func Missing(message string) error {
	return &NotFoundError{Message: message}
}

// PublicMessage returns the client-facing message carried by err and true,
// or "" and false when err is not a validation or not-found error.
func PublicMessage(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message, true
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Message, true
	}
	return "", false
}
