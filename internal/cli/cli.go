package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/sprintboard/internal/app"
	"github.com/thenoetrevino/sprintboard/internal/config"
	"github.com/thenoetrevino/sprintboard/internal/database"
	"github.com/thenoetrevino/sprintboard/internal/events"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB
}

type appKey struct{}

// WithApp returns a context carrying an existing App. Commands run under it
// use that App instead of opening the database themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns a CLI around the App injected with WithApp, or
// initializes a new one.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}

// NewCLI initializes the CLI with database and optional daemon connection
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	opts := []app.Option{}
	if client := connectDaemon(ctx); client != nil {
		opts = append(opts, app.WithEventPublisher(client))
	}

	return &CLI{
		App:    app.New(db, opts...),
		Config: cfg,
		db:     db,
	}, nil
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	if cfg.Database.Path != "" {
		return database.Open(ctx, cfg.Database.Path)
	}
	return database.InitDB(ctx)
}

// connectDaemon tries the daemon socket; a missing daemon only disables
// live updates.
func connectDaemon(ctx context.Context) events.EventPublisher {
	socketPath, err := events.DefaultSocketPath()
	if err != nil {
		return nil
	}
	client, err := events.NewClient(socketPath)
	if err != nil {
		return nil
	}
	if err := client.Connect(ctx); err != nil {
		daemonErr := events.ClassifyDaemonError(err)
		slog.Debug("daemon unavailable", "message", daemonErr.Message, "hint", daemonErr.Hint)
		return nil
	}
	return client
}

// Close cleans up CLI resources. An injected App is left open for its owner.
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	if err := c.App.Close(); err != nil {
		slog.Warn("failed to close event client", "error", err)
	}
	return c.db.Close()
}
