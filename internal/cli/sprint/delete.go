package sprint

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

// DeleteCmd returns the sprint delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a sprint",
		Long:  "Delete a sprint. Its tickets are kept and move to the backlog.",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command("sprint", runDelete),
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
	id, err := args.ID(0, "sprint")
	if err != nil {
		return nil, err
	}

	result, err := c.App.BoardService.DeleteSprint(ctx, id)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: deleteResult{ID: id, CascadeResult: result},
		Human: func(w io.Writer) error {
			if !result.Deleted {
				_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render(fmt.Sprintf("Sprint %d did not exist; nothing deleted", id)))
				return err
			}
			_, err := fmt.Fprintf(w, "%s sprint %d, %d tickets moved to the backlog\n",
				styles.SuccessStyle.Render("Deleted"), id, result.AffectedTickets)
			return err
		},
	}, nil
}
