package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/phonebook-api/internal/domain"
	"github.com/phrazzld/phonebook-api/internal/store"
)

// SeedIfEmpty inserts contacts in one transaction when the contacts table is
// empty. It reports how many rows were inserted.
func (s *PostgresContactStore) SeedIfEmpty(ctx context.Context, db *sql.DB, contacts []domain.Contact) (int, error) {
	inserted := 0
	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.WithTx(tx)

		n, err := txStore.Count(ctx)
		if err != nil || n > 0 {
			return err
		}
		for i := range contacts {
			if err := txStore.Create(ctx, &contacts[i]); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		s.logger.Info("seeded empty phonebook", slog.Int("contacts", inserted))
	}
	return inserted, nil
}
