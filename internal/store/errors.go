package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/phonebook-api/internal/domain"
)

// Common store errors used across all store implementations. Each wraps a
// domain sentinel so callers can classify them with domain.KindOf.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = fmt.Errorf("entity %w", domain.ErrNotFound)

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = fmt.Errorf("entity %w", domain.ErrDuplicate)

	// ErrInvalidEntity is returned when an entity is rejected by the storage
	// backend itself, e.g. a check constraint. Check the wrapped error for details.
	ErrInvalidEntity = fmt.Errorf("invalid entity: %w", domain.ErrValidation)

	// ErrContactNotFound indicates that the requested contact does not exist in the store.
	ErrContactNotFound = fmt.Errorf("%w: contact", ErrNotFound)

	// ErrNameExists indicates that a contact with the given name already exists.
	ErrNameExists = fmt.Errorf("%w: name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "contact")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
