// Package launcher wires configuration, storage and the daemon connection
// into the terminal board.
package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/config"
	"github.com/thenoetrevino/sprintboard/internal/logging"
	"github.com/thenoetrevino/sprintboard/internal/tui"
)

// Launch runs the board until the user quits or ctx is cancelled
func Launch(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Log to file before anything else; the terminal belongs to the board
	logFile, err := logging.Init(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logFile.Close()

	// Opens the database and connects to the daemon if it is running
	c, err := cli.NewCLI(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("error closing board resources", "error", err)
		}
	}()
	if c.App.EventClient() == nil {
		slog.Info("daemon unavailable, continuing without live updates")
	}

	model := tui.New(ctx, c.App.BoardService, c.Config, c.App.EventClient())
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	slog.Info("board closed")
	return nil
}
