package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// RenderTicket renders a single ticket as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ #12 {Title}         ┃
//	┃ High │ 5pt          ┃
//	┃ [Backend]           ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
func RenderTicket(t *models.Ticket, selected bool) string {
	content := renderTicketTitle(t) + "\n" + renderTicketMetadata(t) + "\n" + renderTicketEpic(t)

	style := CardStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(content)
}

func renderTicketTitle(t *models.Ticket) string {
	title := t.Title
	if runes := []rune(title); len(runes) > ticketTitleMaxLength {
		title = string(runes[:ticketTitleMaxLength]) + SubtleStyle.Italic(true).Render("...")
	}
	return SubtleStyle.Render(fmt.Sprintf(" #%d ", t.ID)) + lipgloss.NewStyle().Bold(true).Render(title)
}

func renderTicketMetadata(t *models.Ticket) string {
	priority := lipgloss.NewStyle().Foreground(lipgloss.Color(t.PriorityColor)).Render(string(t.Priority))

	points := SubtleStyle.Italic(true).Render("no points")
	if t.StoryPoints != nil {
		points = SubtleStyle.Render(fmt.Sprintf("%dpt", *t.StoryPoints))
	}

	return " " + priority + SubtleStyle.Render(" │ ") + points
}

func renderTicketEpic(t *models.Ticket) string {
	if t.EpicName == nil {
		return " " + SubtleStyle.Italic(true).Render("no epic")
	}
	color := models.DefaultEpicColor
	if t.EpicColor != nil {
		color = *t.EpicColor
	}
	return " " + lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render("["+*t.EpicName+"]")
}
