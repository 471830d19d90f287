package sprint

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli/styles"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// SprintCmd returns the sprint parent command
func SprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Manage sprints",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CompleteCmd())
	cmd.AddCommand(ReopenCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(BurndownCmd())

	return cmd
}

func sprintLine(s *models.Sprint) string {
	status := styles.ValueStyle.Render(string(s.Status))
	if s.IsCompleted() {
		status = styles.SubtitleStyle.Render(string(s.Status))
	}
	return fmt.Sprintf("%s %s  %s  %s",
		styles.SubtitleStyle.Render(fmt.Sprintf("#%d", s.ID)),
		styles.TitleStyle.Render(s.Name),
		styles.SubtitleStyle.Render(s.StartDate+" to "+s.EndDate),
		status)
}

func writeSprint(w io.Writer, verb string, s *models.Sprint) error {
	_, err := fmt.Fprintf(w, "%s %s\n", styles.SuccessStyle.Render(verb), sprintLine(s))
	return err
}
