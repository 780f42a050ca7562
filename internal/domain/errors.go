package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped by a ValidationError carrying the field and message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrNotFound is returned when the requested contact does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an operation would break a uniqueness rule.
	ErrDuplicate = errors.New("already exists")
)

// Kind is the category of an error as seen by the transport layer.
type Kind int

// Error kinds. Every error produced below the API layer maps to exactly one.
const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidID
	KindValidation
	KindDuplicate
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidID:
		return "invalid_id"
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	default:
		return "internal"
	}
}

// KindOf classifies err. Errors that wrap none of the domain sentinels are
// KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrInvalidID):
		return KindInvalidID
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicate):
		return KindDuplicate
	default:
		return KindInternal
	}
}

// ValidationError describes a single rejected field. Message is safe to
// return to clients as-is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError. When err is nil it wraps
// ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// GoString is used by %#v and keeps the field visible in logs.
func (e *ValidationError) GoString() string {
	return fmt.Sprintf("domain.ValidationError{Field:%q, Message:%q}", e.Field, e.Message)
}
