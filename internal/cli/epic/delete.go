package epic

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/cli/styles"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// DeleteCmd returns the epic delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an epic",
		Long:  "Delete an epic. Its tickets are kept and lose their epic reference.",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command("epic", runDelete),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type deleteResult struct {
	ID int `json:"id"`
	*models.CascadeResult
}

func (d deleteResult) GetID() int { return d.ID }

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	id, err := args.ID(0, "epic")
	if err != nil {
		return nil, err
	}

	result, err := c.App.BoardService.DeleteEpic(ctx, id)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: deleteResult{ID: id, CascadeResult: result},
		Human: func(w io.Writer) error {
			if !result.Deleted {
				_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render(fmt.Sprintf("Epic %d did not exist; nothing deleted", id)))
				return err
			}
			_, err := fmt.Fprintf(w, "%s epic %d, %d tickets unassigned\n",
				styles.SuccessStyle.Render("Deleted"), id, result.AffectedTickets)
			return err
		},
	}, nil
}
