package epic

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintboard/internal/cli/styles"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// EpicCmd returns the epic parent command
func EpicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epic",
		Short: "Manage epics",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func epicLine(e *models.Epic) string {
	return fmt.Sprintf("%s %s  %s",
		styles.SubtitleStyle.Render(fmt.Sprintf("#%d", e.ID)),
		styles.RenderChip(e.Name, e.Color),
		styles.SubtitleStyle.Render(fmt.Sprintf("%s, %d tickets", e.Color, e.TicketCount)))
}

func writeEpic(w io.Writer, verb string, e *models.Epic) error {
	_, err := fmt.Fprintf(w, "%s %s\n", styles.SuccessStyle.Render(verb), epicLine(e))
	return err
}
