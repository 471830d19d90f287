// Command daemon runs the sprintboard event daemon on its own, for service
// managers that start it outside the main binary.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/sprintboard/internal/daemon"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := daemon.Run(ctx); err != nil {
		slog.Error("daemon failed", "error", err)
		os.Exit(1)
	}
}
