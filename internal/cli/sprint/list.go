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

// ListCmd returns the sprint list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sprints, most recent first",
		Args:  cobra.NoArgs,
		RunE:  handler.Command("sprint", runList),
	}
	cmd.Flags().Bool("active", false, "Only active sprints")
	cli.AddOutputFlags(cmd)
	return cmd
}

type sprintList []*models.Sprint

func (l sprintList) GetIDs() []int {
	ids := make([]int, len(l))
	for i, s := range l {
		ids[i] = s.ID
	}
	return ids
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	sprints, err := c.App.BoardService.ListSprints(ctx)
	if err != nil {
		return nil, err
	}

	if args.Bool("active") {
		active := sprintList{}
		for _, s := range sprints {
			if !s.IsCompleted() {
				active = append(active, s)
			}
		}
		sprints = active
	}

	return &handler.Result{
		Data: sprintList(sprints),
		Human: func(w io.Writer) error {
			if len(sprints) == 0 {
				_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No sprints"))
				return err
			}
			for _, s := range sprints {
				if _, err := fmt.Fprintln(w, sprintLine(s)); err != nil {
					return err
				}
			}
			return nil
		},
	}, nil
}
