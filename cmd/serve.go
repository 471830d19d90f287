package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/config"
	"github.com/thenoetrevino/sprintboard/internal/logging"
	"github.com/thenoetrevino/sprintboard/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Long: `Serve the JSON API under /api and the web board's static files.

The address and static directory come from the config file
(server.addr, server.static_dir) unless --addr is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logging.ParseLevel(cfg.Logging.Level),
			})))

			c, err := cli.NewCLI(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return server.New(c.App, c.Config.Server.StaticDir).Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
