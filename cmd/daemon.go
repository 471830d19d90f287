package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/daemon"
)

func daemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the event daemon that keeps open boards in sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			return daemon.Run(cmd.Context())
		},
	}
}
