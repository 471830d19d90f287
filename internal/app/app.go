package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/sprintboard/internal/database"
	"github.com/thenoetrevino/sprintboard/internal/events"
	"github.com/thenoetrevino/sprintboard/internal/services/analytics"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
)

// App holds all application services and provides dependency injection.
// Every presentation adapter (HTTP, CLI, TUI) is built on one of these.
type App struct {
	db          *sql.DB
	repo        database.DataStore
	eventClient events.EventPublisher
	logger      *slog.Logger

	// Service layer (business logic)
	BoardService     board.Service
	AnalyticsService analytics.Service
}

// New creates a new App with all services initialized.
// The caller keeps ownership of db.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	repo := database.NewRepository(db)
	return &App{
		db:               db,
		repo:             repo,
		eventClient:      cfg.eventClient,
		logger:           logger,
		BoardService:     board.NewService(repo, cfg.eventClient),
		AnalyticsService: analytics.NewService(repo),
	}
}

// Repo returns the underlying record store
func (a *App) Repo() database.DataStore {
	return a.repo
}

// EventClient returns the event publisher, or nil when live updates are off
func (a *App) EventClient() events.EventPublisher {
	return a.eventClient
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the event client. The database is closed by its owner.
func (a *App) Close() error {
	if a.eventClient == nil {
		return nil
	}
	return a.eventClient.Close()
}
