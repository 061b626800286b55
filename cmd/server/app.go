package main

import (
	"database/sql"
	"log/slog"

	"github.com/mfaisal/user-api/internal/config"
	"github.com/mfaisal/user-api/internal/platform/postgres"
	"github.com/mfaisal/user-api/internal/service"
	"github.com/mfaisal/user-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown. Everything is wired
// through explicit constructors; there is no runtime registry.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore   store.UserStore
	userService service.UserService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies (configuration, logger,
// database connection) that must be established before wiring.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db)
	app.userService = service.NewUserService(app.userStore, db, logger)

	logger.Info("application dependencies initialized")

	return app
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
