package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/sprintboard/internal/events"
)

// Run serves the default socket until ctx is cancelled
func Run(ctx context.Context) error {
	socketPath, err := events.DefaultSocketPath()
	if err != nil {
		return err
	}

	server, err := NewServer(socketPath)
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	slog.Info("sprintboard daemon starting", "socket_path", socketPath, "pid", os.Getpid())
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("daemon error: %w", err)
	}
	slog.Info("sprintboard daemon shut down gracefully")
	return nil
}
