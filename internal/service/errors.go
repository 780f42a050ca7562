// Package service provides the application-level operations of the phonebook.
package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/phonebook-api/internal/domain"
	"github.com/phrazzld/phonebook-api/internal/store"
)

// Service errors follow the same principles as the rest of the codebase:
//  1. Expected conditions are reported with sentinel errors that wrap a
//     domain sentinel, so the API layer can classify them with domain.KindOf
//  2. Unexpected errors are wrapped in ContactServiceError with the failing operation
//  3. Callers use errors.Is/errors.As to check for specific error conditions
var (
	// ErrContactNotFound indicates that the contact does not exist.
	// API layer maps this to HTTP 404 Not Found.
	ErrContactNotFound = store.ErrContactNotFound

	// ErrNameExists indicates that another contact already uses the name
	// while the unique-name policy is enabled.
	ErrNameExists = store.ErrNameExists
)

// ContactServiceError wraps errors from the contact service with context.
type ContactServiceError struct {
	// Operation is the operation that failed (e.g., "create_contact")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ContactServiceError.
func (e *ContactServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("contact service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("contact service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ContactServiceError) Unwrap() error {
	return e.Err
}

// NewContactServiceError creates a new ContactServiceError.
// Validation errors and known store sentinels are returned unwrapped, since
// they already carry everything the API layer needs.
func NewContactServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return err
	case store.IsNotFoundError(err):
		return ErrContactNotFound
	case errors.Is(err, ErrNameExists):
		return ErrNameExists
	}

	return &ContactServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
