package sprint

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// CompleteCmd returns the sprint complete subcommand
func CompleteCmd() *cobra.Command {
	return statusCmd("complete <id>", "Mark a sprint completed", models.SprintCompleted, "Completed")
}

// ReopenCmd returns the sprint reopen subcommand
func ReopenCmd() *cobra.Command {
	return statusCmd("reopen <id>", "Mark a completed sprint active again", models.SprintActive, "Reopened")
}

func statusCmd(use, short string, target models.SprintStatus, verb string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: handler.Command("sprint", func(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
			id, err := args.ID(0, "sprint")
			if err != nil {
				return nil, err
			}

			sprint, err := c.App.BoardService.SetSprintStatus(ctx, id, string(target))
			if err != nil {
				return nil, err
			}

			return &handler.Result{
				Data:  sprint,
				Human: func(w io.Writer) error { return writeSprint(w, verb, sprint) },
			}, nil
		}),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
