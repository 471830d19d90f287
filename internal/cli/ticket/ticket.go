package ticket

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli/styles"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// TicketCmd returns the ticket parent command
func TicketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Manage tickets",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// summaryLine renders a one-line ticket summary for lists
func summaryLine(t *models.Ticket) string {
	parts := []string{
		styles.SubtitleStyle.Render(fmt.Sprintf("#%d", t.ID)),
		styles.ValueStyle.Render(t.Title),
		styles.ColoredText(string(t.Priority), t.PriorityColor),
	}
	if t.EpicName != nil {
		color := models.DefaultEpicColor
		if t.EpicColor != nil {
			color = *t.EpicColor
		}
		parts = append(parts, styles.RenderChip(*t.EpicName, color))
	}
	if t.StoryPoints != nil {
		parts = append(parts, styles.SubtitleStyle.Render(fmt.Sprintf("%dpt", *t.StoryPoints)))
	}
	return strings.Join(parts, "  ")
}

func writeSummary(w io.Writer, verb string, t *models.Ticket) error {
	_, err := fmt.Fprintf(w, "%s %s\n", styles.SuccessStyle.Render(verb), summaryLine(t))
	return err
}
