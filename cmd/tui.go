package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/launcher"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal board",
		Long: `Open the three-column terminal board. The board refreshes whenever
another process changes it, provided the daemon is running.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}
}
