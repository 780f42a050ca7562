package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/phonebook-api/internal/config"
	"github.com/phrazzld/phonebook-api/internal/domain"
	"github.com/phrazzld/phonebook-api/internal/metrics"
	"github.com/phrazzld/phonebook-api/internal/platform/memory"
	"github.com/phrazzld/phonebook-api/internal/platform/postgres"
	"github.com/phrazzld/phonebook-api/internal/service"
	"github.com/phrazzld/phonebook-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil for the memory driver
	db *sql.DB

	contactStore   store.ContactStore
	contactService service.ContactService

	// now is the clock used by /info
	now func() time.Time
}

// newApplication creates a new application instance with all dependencies
// initialized for the configured store driver.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		now:    time.Now,
	}

	var err error
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		err = app.setupPostgresStore(ctx)
	case config.DriverMemory:
		app.setupMemoryStore()
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		app.cleanup()
		return nil, err
	}

	app.contactService, err = service.NewContactService(
		app.contactStore,
		service.Options{UniqueNames: cfg.Phonebook.UniqueNames},
		logger,
	)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize contact service: %w", err)
	}

	metrics.RegisterContactsGauge(app.contactService, logger)

	logger.Info("Application initialized",
		"store_driver", cfg.Store.Driver,
		"unique_names", cfg.Phonebook.UniqueNames)
	return app, nil
}

func (app *application) setupMemoryStore() {
	var seed []domain.Contact
	if app.config.Store.Seed {
		seed = domain.SeedContacts()
	}
	app.contactStore = memory.NewContactStore(app.logger, seed...)
	app.logger.Info("Using in-memory contact store", "seeded_contacts", len(seed))
}

func (app *application) setupPostgresStore(ctx context.Context) error {
	db, err := setupAppDatabase(ctx, app.config, app.logger)
	if err != nil {
		return err
	}
	app.db = db

	if app.config.Store.AutoMigrate {
		if err := postgres.Migrate(ctx, db, "up", app.logger); err != nil {
			return err
		}
	}

	pgStore := postgres.NewPostgresContactStore(db, app.logger)
	if app.config.Store.Seed {
		if _, err := pgStore.SeedIfEmpty(ctx, db, domain.SeedContacts()); err != nil {
			return fmt.Errorf("failed to seed contacts: %w", err)
		}
	}

	app.contactStore = pgStore
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
