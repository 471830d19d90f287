// Package stats prints board analytics
package stats

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
)

// StatsCmd returns the stats parent command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Board analytics",
	}
	cmd.AddCommand(OverviewCmd())
	cmd.AddCommand(VelocityCmd())
	return cmd
}

// OverviewCmd returns the stats overview subcommand
func OverviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Ticket and story point totals across the whole board",
		Args:  cobra.NoArgs,
		RunE:  handler.Command("stats", runOverview),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// VelocityCmd returns the stats velocity subcommand
func VelocityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "velocity",
		Short: "Completed story points over recently completed sprints",
		Long: fmt.Sprintf(`Show completed story points for the %d most recently ended completed
sprints and their average. Active sprints are never included.`, models.VelocityWindow),
		Args: cobra.NoArgs,
		RunE: handler.Command("stats", runVelocity),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runOverview(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (*handler.Result, error) {
	o, err := c.App.AnalyticsService.Overview(ctx)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: o,
		Human: func(w io.Writer) error {
			var b strings.Builder
			b.WriteString(styles.TitleStyle.Render("Board overview") + "\n")
			fmt.Fprintf(&b, "%s  %s  %s\n",
				styles.Field("To Do", fmt.Sprint(o.TodoTickets)),
				styles.Field("In Progress", fmt.Sprint(o.InProgressTickets)),
				styles.Field("Done", fmt.Sprint(o.CompletedTickets)))
			fmt.Fprintf(&b, "%s  %s\n",
				styles.Field("Tickets", fmt.Sprint(o.TotalTickets)),
				styles.Field("Story points", fmt.Sprintf("%d/%d", o.CompletedStoryPoints, o.TotalStoryPoints)))
			b.WriteString(styles.Field("Completion", fmt.Sprintf("%.1f%%", o.CompletionRate)) + "\n")
			_, err := io.WriteString(w, b.String())
			return err
		},
	}, nil
}

type velocityResult struct {
	*models.Velocity
}

func (v velocityResult) GetIDs() []int {
	ids := make([]int, len(v.Sprints))
	for i, s := range v.Sprints {
		ids[i] = s.ID
	}
	return ids
}

func runVelocity(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (*handler.Result, error) {
	v, err := c.App.AnalyticsService.Velocity(ctx)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: velocityResult{v},
		Human: func(w io.Writer) error {
			var b strings.Builder
			b.WriteString(styles.TitleStyle.Render("Velocity") + "\n")
			if len(v.Sprints) == 0 {
				b.WriteString(styles.SubtitleStyle.Render("No completed sprints yet") + "\n")
			}
			for _, s := range v.Sprints {
				fmt.Fprintf(&b, "%-20s %s  %s\n", s.Name,
					styles.SubtitleStyle.Render(s.StartDate+" to "+s.EndDate),
					styles.ValueStyle.Render(fmt.Sprintf("%d/%d pts", s.CompletedStoryPoints, s.TotalStoryPoints)))
			}
			b.WriteString(styles.Field("Average", fmt.Sprintf("%.1f pts per sprint", v.AverageVelocity)) + "\n")
			_, err := io.WriteString(w, b.String())
			return err
		},
	}, nil
}
