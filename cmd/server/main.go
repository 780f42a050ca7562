// Package main implements the entry point for the phonebook API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/phrazzld/phonebook-api/internal/config"
	"github.com/phrazzld/phonebook-api/internal/platform/logger"
	"github.com/phrazzld/phonebook-api/internal/platform/postgres"
)

func main() {
	migrate := flag.String("migrate", "",
		"run a migration command ("+strings.Join(postgres.MigrationCommands, ", ")+") and exit")
	flag.Parse()

	if err := run(context.Background(), *migrate); err != nil {
		slog.Error("phonebook server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging and then either executes a
// migration command or serves HTTP until interrupted.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"store_driver", cfg.Store.Driver,
		"unique_names", cfg.Phonebook.UniqueNames)

	if migrateCmd != "" {
		return runMigrations(ctx, cfg, log, migrateCmd)
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.startHTTPServer(ctx, app.setupRouter())
}

// runMigrations executes a single goose command against the configured database.
func runMigrations(ctx context.Context, cfg *config.Config, log *slog.Logger, command string) error {
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("unknown migration command %q (want one of %s)",
			command, strings.Join(postgres.MigrationCommands, ", "))
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("database.url is required to run migrations")
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database connection", "error", err)
		}
	}()

	return postgres.Migrate(ctx, db, command, log)
}
