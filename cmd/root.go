// Package cmd assembles the sprintboard command tree.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/board"
	"github.com/thenoetrevino/sprintboard/internal/cli/epic"
	"github.com/thenoetrevino/sprintboard/internal/cli/sprint"
	"github.com/thenoetrevino/sprintboard/internal/cli/stats"
	"github.com/thenoetrevino/sprintboard/internal/cli/ticket"
	"github.com/thenoetrevino/sprintboard/internal/launcher"
)

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sprintboard",
		Short: "Sprintboard - tickets, epics and sprints on a three-column board",
		Long: `Sprintboard tracks tickets through To Do, In Progress and Done,
groups them into epics and sprints, and reports burndown and velocity.

Run without a subcommand to open the terminal board.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(c.ErrOrStderr(), "Error: %v\nRun '%s --help' for usage.\n", err, c.CommandPath())
		return &cli.ExitError{Code: cli.ExitUsage, Err: err}
	})

	rootCmd.AddCommand(ticket.TicketCmd())
	rootCmd.AddCommand(epic.EpicCmd())
	rootCmd.AddCommand(sprint.SprintCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(stats.StatsCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(daemonCmd())
	rootCmd.AddCommand(tuiCmd())
	return rootCmd
}

// Execute runs the command tree under ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
