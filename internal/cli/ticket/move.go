package ticket

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// MoveCmd returns the ticket move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a ticket to another column",
		Long: `Set a ticket's status. Any status can move to any other; moving a
ticket to its current status succeeds and changes nothing.

Examples:
  sprintboard ticket move 12 InProgress
  sprintboard ticket move 12 "In Progress"
  sprintboard ticket move 12 done
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.Command("ticket", runMove),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	id, err := args.ID(0, "ticket")
	if err != nil {
		return nil, err
	}

	ticket, err := c.App.BoardService.TransitionStatus(ctx, id, args.Args[1])
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: ticket,
		Human: func(w io.Writer) error {
			return writeSummary(w, "Moved to "+models.NormalizeStatus(string(ticket.Status)).Title()+":", ticket)
		},
	}, nil
}
