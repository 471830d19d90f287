package sprint

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/cli/handler"
	"github.com/thenoetrevino/sprintboard/internal/cli/styles"
)

// ShowCmd returns the sprint show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show sprint details",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command("sprint", runShow),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	id, err := args.ID(0, "sprint")
	if err != nil {
		return nil, err
	}

	sprint, err := c.App.BoardService.GetSprint(ctx, id)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: sprint,
		Human: func(w io.Writer) error {
			var content strings.Builder
			content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", sprint.ID, sprint.Name)))
			content.WriteString("\n\n")
			content.WriteString(styles.Field("Status", string(sprint.Status)) + "\n")
			content.WriteString(styles.Field("Dates", sprint.StartDate+" to "+sprint.EndDate) + "\n")
			if sprint.Goal != "" {
				content.WriteString(styles.Field("Goal", sprint.Goal) + "\n")
			}
			content.WriteString(styles.SubtitleStyle.Render("Created " + sprint.CreatedAt.Local().Format("2006-01-02 15:04")))
			_, err := fmt.Fprintln(w, styles.RenderCard(content.String()))
			return err
		},
	}, nil
}
