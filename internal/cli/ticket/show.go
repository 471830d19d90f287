package ticket

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
	"github.com/thenoetrevino/sprintboard/internal/tui/components"
)

// ShowCmd returns the ticket show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show ticket details",
		Long:  "Display a ticket with its epic, sprint and rendered markdown description.",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command("ticket", runShow),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (*handler.Result, error) {
	id, err := args.ID(0, "ticket")
	if err != nil {
		return nil, err
	}

	ticket, err := c.App.BoardService.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: ticket,
		Human: func(w io.Writer) error {
			_, err := fmt.Fprintln(w, styles.RenderCard(renderDetail(ticket)))
			return err
		},
	}, nil
}

func renderDetail(t *models.Ticket) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", t.ID, t.Title)))
	content.WriteString("\n\n")

	status := models.NormalizeStatus(string(t.Status))
	content.WriteString(styles.Field("Status", status.Title()))
	content.WriteString("  ")
	content.WriteString(styles.LabelStyle.Render("Priority:") + " " + styles.ColoredText(string(t.Priority), t.PriorityColor))
	if t.StoryPoints != nil {
		content.WriteString("  ")
		content.WriteString(styles.Field("Points", fmt.Sprint(*t.StoryPoints)))
	}
	content.WriteString("\n")

	if t.EpicName != nil {
		color := models.DefaultEpicColor
		if t.EpicColor != nil {
			color = *t.EpicColor
		}
		content.WriteString(styles.LabelStyle.Render("Epic:") + " " + styles.RenderChip(*t.EpicName, color) + "\n")
	}
	if t.SprintName != nil {
		sprint := *t.SprintName
		if t.SprintStatus != nil {
			sprint += " (" + string(*t.SprintStatus) + ")"
		}
		content.WriteString(styles.Field("Sprint", sprint) + "\n")
	}

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(components.RenderDescription(t.Description, styles.CardWidth-6))
	content.WriteString("\n\n")

	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Created %s  Updated %s",
		t.CreatedAt.Local().Format("2006-01-02 15:04"),
		t.UpdatedAt.Local().Format("2006-01-02 15:04"))))

	return content.String()
}
