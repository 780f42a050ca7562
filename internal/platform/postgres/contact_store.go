package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/phonebook-api/internal/domain"
	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/phrazzld/phonebook-api/internal/redact"
	"github.com/phrazzld/phonebook-api/internal/store"
)

// PostgresContactStore implements the store.ContactStore interface
// using a PostgreSQL database as the storage backend.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a new PostgreSQL implementation of the ContactStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

// Ensure PostgresContactStore implements store.TxContactStore interface
var _ store.TxContactStore = (*PostgresContactStore)(nil)

// WithTx implements store.TxContactStore.
func (s *PostgresContactStore) WithTx(tx *sql.Tx) store.ContactStore {
	return &PostgresContactStore{db: tx, logger: s.logger}
}

// List implements store.ContactStore.List.
// Contacts are returned in insertion order.
func (s *PostgresContactStore) List(ctx context.Context) ([]*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, number
		FROM contacts
		ORDER BY seq
	`)
	if err != nil {
		log.Error("failed to list contacts", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Number); err != nil {
			log.Error("failed to scan contact row", slog.String("error", redact.Error(err)))
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating contact rows", slog.String("error", redact.Error(err)))
		return nil, err
	}

	log.Debug("contacts listed", slog.Int("count", len(contacts)))
	return contacts, nil
}

// Count implements store.ContactStore.Count.
func (s *PostgresContactStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count contacts",
			slog.String("error", redact.Error(err)))
		return 0, MapError(err)
	}
	return n, nil
}

// GetByID implements store.ContactStore.GetByID.
// Returns store.ErrContactNotFound if the contact does not exist.
func (s *PostgresContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var c domain.Contact
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, number
		FROM contacts
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found", slog.String("contact_id", id.String()))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact by ID",
			slog.String("error", redact.Error(err)),
			slog.String("contact_id", id.String()))
		return nil, MapError(err)
	}
	return &c, nil
}

// Create implements store.ContactStore.Create.
// Returns store.ErrDuplicate if a contact with the same ID exists.
func (s *PostgresContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if contact.ID == uuid.Nil {
		return fmt.Errorf("%w: contact ID must be set", store.ErrInvalidEntity)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (id, name, number)
		VALUES ($1, $2, $3)
	`, contact.ID, contact.Name, contact.Number)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate contact ID",
				slog.String("contact_id", contact.ID.String()))
		} else {
			log.Error("failed to create contact",
				slog.String("error", redact.Error(err)),
				slog.String("contact_id", contact.ID.String()))
		}
		return MapError(err)
	}

	log.Debug("contact created", slog.String("contact_id", contact.ID.String()))
	return nil
}

// CreateUnique implements store.ContactStore.CreateUnique.
// Inserts sharing a name are serialized by a transaction-scoped advisory lock
// on the name, so the NOT EXISTS check sees every committed competitor.
// When the store already wraps a transaction, that transaction is used.
func (s *PostgresContactStore) CreateUnique(ctx context.Context, contact *domain.Contact) error {
	if contact.ID == uuid.Nil {
		return fmt.Errorf("%w: contact ID must be set", store.ErrInvalidEntity)
	}

	if db, ok := s.db.(*sql.DB); ok {
		return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return s.insertIfNameFree(ctx, tx, contact)
		})
	}
	return s.insertIfNameFree(ctx, s.db, contact)
}

func (s *PostgresContactStore) insertIfNameFree(ctx context.Context, db store.DBTX, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := db.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`, contact.Name,
	); err != nil {
		log.Error("failed to lock contact name", slog.String("error", redact.Error(err)))
		return store.NewStoreError("contact", "create", "name lock failed", MapError(err))
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO contacts (id, name, number)
		SELECT $1::uuid, $2::text, $3::text
		WHERE NOT EXISTS (SELECT 1 FROM contacts WHERE name = $2::text)
	`, contact.ID, contact.Name, contact.Number)
	if err != nil {
		log.Error("failed to create contact",
			slog.String("error", redact.Error(err)),
			slog.String("contact_id", contact.ID.String()))
		return store.NewStoreError("contact", "create", "insert failed", MapError(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("contact", "create", "rows affected unavailable", err)
	}
	if n == 0 {
		log.Debug("contact name already taken")
		return store.NewStoreError("contact", "create", "name already taken", store.ErrNameExists)
	}

	log.Debug("contact created", slog.String("contact_id", contact.ID.String()))
	return nil
}

// Update implements store.ContactStore.Update.
// Returns store.ErrNotFound if the contact does not exist.
func (s *PostgresContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE contacts
		SET name = $1, number = $2, updated_at = now()
		WHERE id = $3
	`, contact.Name, contact.Number, contact.ID)
	if err != nil {
		log.Error("failed to update contact",
			slog.String("error", redact.Error(err)),
			slog.String("contact_id", contact.ID.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "contact"); err != nil {
		return err
	}

	log.Debug("contact updated", slog.String("contact_id", contact.ID.String()))
	return nil
}

// Delete implements store.ContactStore.Delete.
// Returns store.ErrNotFound if the contact does not exist.
func (s *PostgresContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", redact.Error(err)),
			slog.String("contact_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "contact"); err != nil {
		return err
	}

	log.Debug("contact deleted", slog.String("contact_id", id.String()))
	return nil
}

// Ping implements store.ContactStore.Ping.
func (s *PostgresContactStore) Ping(ctx context.Context) error {
	if p, ok := s.db.(interface{ PingContext(context.Context) error }); ok {
		return p.PingContext(ctx)
	}
	var one int
	return s.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one)
}
