package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/phonebook-api/internal/domain"
)

// ContactStore defines the interface for contact persistence.
// Implementations must be safe for concurrent use.
type ContactStore interface {
	// List returns every contact in the store's natural order
	// (insertion order for all current implementations).
	List(ctx context.Context) ([]*domain.Contact, error)

	// Count returns the number of stored contacts.
	Count(ctx context.Context) (int, error)

	// GetByID retrieves a contact by its unique ID.
	// Returns ErrContactNotFound if the contact does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)

	// Create saves a new contact. The contact's ID must already be set.
	// Returns ErrDuplicate if the ID is already taken.
	Create(ctx context.Context, contact *domain.Contact) error

	// CreateUnique saves a new contact unless another contact has exactly the
	// same name. The check and the insert are atomic with respect to other
	// CreateUnique calls. Returns ErrNameExists if the name is taken.
	CreateUnique(ctx context.Context, contact *domain.Contact) error

	// Update replaces the name and number of an existing contact.
	// Returns ErrContactNotFound if the contact does not exist.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes a contact by its ID.
	// Returns ErrContactNotFound if the contact does not exist; callers that
	// want idempotent deletes should ignore that error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}

// TxContactStore is implemented by stores backed by a SQL database that can
// run their operations inside a caller-managed transaction.
type TxContactStore interface {
	ContactStore

	// WithTx returns a ContactStore that uses the provided transaction.
	//
	// Example usage:
	//   err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
	//       return contactStore.WithTx(tx).Create(ctx, contact)
	//   })
	WithTx(tx *sql.Tx) ContactStore
}
