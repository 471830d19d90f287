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
	"github.com/thenoetrevino/sprintboard/internal/models"
	"github.com/thenoetrevino/sprintboard/internal/services/analytics"
)

const barWidth = 30

// BurndownCmd returns the sprint burndown subcommand
func BurndownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burndown <id>",
		Short: "Show remaining story points for a sprint",
		Long: `Show the current burndown snapshot of a sprint: total, completed and
remaining story points over the sprint's tickets. Tickets without story
points count as zero points.`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command("sprint", runBurndown),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type burndownResult struct {
	*models.Burndown
}

func (b burndownResult) GetID() int { return b.Sprint.ID }

func runBurndown(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	id, err := args.ID(0, "sprint")
	if err != nil {
		return nil, err
	}

	burndown, err := c.App.AnalyticsService.SprintBurndown(ctx, id)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data:  burndownResult{burndown},
		Human: func(w io.Writer) error { return writeBurndown(w, burndown) },
	}, nil
}

func writeBurndown(w io.Writer, b *models.Burndown) error {
	var out strings.Builder

	out.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s  %s to %s", b.Sprint.Name, b.Sprint.StartDate, b.Sprint.EndDate)))
	out.WriteString("\n")
	out.WriteString(progressBar(b.CompletedStoryPoints, b.TotalStoryPoints))
	out.WriteString("  ")
	out.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%.1f%%", analytics.CompletionRate(b.CompletedStoryPoints, b.TotalStoryPoints))))
	out.WriteString("\n")
	fmt.Fprintf(&out, "%s  %s  %s\n",
		styles.Field("Total", fmt.Sprint(b.TotalStoryPoints)),
		styles.Field("Completed", fmt.Sprint(b.CompletedStoryPoints)),
		styles.Field("Remaining", fmt.Sprint(b.RemainingStoryPoints)))
	out.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d of %d tickets done", b.CompletedTickets, b.TotalTickets)))
	out.WriteString("\n")

	for _, t := range b.Tickets {
		mark := " "
		if t.IsDone() {
			mark = "x"
		}
		fmt.Fprintf(&out, "  [%s] #%d %s %s\n", mark, t.ID, t.Title,
			styles.SubtitleStyle.Render(fmt.Sprintf("%dpt", t.Points())))
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// progressBar draws completed/total as a fixed width bar
func progressBar(completed, total int) string {
	filled := 0
	if total > 0 {
		filled = completed * barWidth / total
	}
	return styles.SuccessStyle.Render(strings.Repeat("█", filled)) +
		styles.SubtitleStyle.Render(strings.Repeat("░", barWidth-filled))
}
