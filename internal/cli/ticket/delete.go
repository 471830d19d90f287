package ticket

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/cli/styles"
)

// DeleteCmd returns the ticket delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ticket",
		Long:  "Delete a ticket. Deleting a ticket that does not exist reports 0 changes and succeeds.",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command("ticket", runDelete),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type deleteResult struct {
	ID      int   `json:"id"`
	Changes int64 `json:"changes"`
}

func (d deleteResult) GetID() int { return d.ID }

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	id, err := args.ID(0, "ticket")
	if err != nil {
		return nil, err
	}

	changes, err := c.App.BoardService.DeleteTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	result := deleteResult{ID: id, Changes: changes}
	return &handler.Result{
		Data: result,
		Human: func(w io.Writer) error {
			if changes == 0 {
				_, err := fmt.Fprintf(w, "%s\n", styles.SubtitleStyle.Render(fmt.Sprintf("Ticket %d did not exist; nothing deleted", id)))
				return err
			}
			_, err := fmt.Fprintf(w, "%s ticket %d\n", styles.SuccessStyle.Render("Deleted"), id)
			return err
		},
	}, nil
}
