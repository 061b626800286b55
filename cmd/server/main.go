// Package main implements the entry point for the user API server, a small
// CRUD service over the users table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/mfaisal/user-api/internal/config"
	"github.com/mfaisal/user-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command and exit (up|down|status|version|create)",
	)
	migrationName := flag.String(
		"migration-name",
		"",
		"name for a new migration, used with -migrate create",
	)
	flag.Parse()

	if err := run(*migrateCmd, *migrationName); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, sets up logging and either executes a migration
// command or starts the HTTP server. Splitting this from main keeps the
// exit path in one place.
func run(migrateCmd, migrationName string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"env", cfg.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if migrateCmd != "" {
		return runMigrations(cfg, appLogger, migrateCmd, migrationName)
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}

	app := newApplication(cfg, appLogger, db)
	defer app.cleanup()

	router := app.setupRouter()
	return app.startHTTPServer(context.Background(), router)
}
