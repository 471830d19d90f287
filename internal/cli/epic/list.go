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

// ListCmd returns the epic list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List epics with their ticket counts",
		Args:  cobra.NoArgs,
		RunE:  handler.Command("epic", runList),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type epicList []*models.Epic

func (l epicList) GetIDs() []int {
	ids := make([]int, len(l))
	for i, e := range l {
		ids[i] = e.ID
	}
	return ids
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (*handler.Result, error) {
	epics, err := c.App.BoardService.ListEpics(ctx)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: epicList(epics),
		Human: func(w io.Writer) error {
			if len(epics) == 0 {
				_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No epics"))
				return err
			}
			for _, e := range epics {
				if _, err := fmt.Fprintln(w, epicLine(e)); err != nil {
					return err
				}
			}
			return nil
		},
	}, nil
}
