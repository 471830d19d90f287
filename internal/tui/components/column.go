package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// RenderColumn renders a complete column with its title and tickets
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Ticket 1}
//	{Ticket 2}
//	...
//	▼ (if more tickets below)
//
// selectedIdx is the selected ticket in this column, -1 for none. height is
// the total box height, 0 for auto.
func RenderColumn(column *models.Column, selected bool, selectedIdx, height, scrollOffset int) string {
	content := renderColumnHeader(column) + "\n"

	if len(column.Tickets) == 0 {
		content += SubtleStyle.Italic(true).Padding(1, 0).Render("No tickets")
	} else {
		visible := VisibleTickets(height)
		scrollOffset = max(0, min(scrollOffset, len(column.Tickets)-1))
		endIdx := min(scrollOffset+visible, len(column.Tickets))

		content += renderScrollIndicator(scrollOffset > 0, "▲ more above")
		for i, t := range column.Tickets[scrollOffset:endIdx] {
			content += RenderTicket(t, selected && scrollOffset+i == selectedIdx) + "\n"
		}

		if endIdx < len(column.Tickets) {
			used := headerLines + topIndicatorLines + (endIdx-scrollOffset)*TicketCardHeight
			if remaining := height - columnBorderOverhead - used - 1; remaining > 0 {
				content += strings.Repeat("\n", remaining)
			}
			content += IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if height > 0 {
		// Height sets the content area, borders excluded
		style = style.Height(height - 2)
	}
	return style.Render(content)
}

// VisibleTickets is how many cards fit in a column of the given height
func VisibleTickets(height int) int {
	if height <= 0 {
		return 1 << 30
	}
	available := height - columnBorderOverhead - headerLines - topIndicatorLines - 1
	return max(available/TicketCardHeight, 1)
}

func renderColumnHeader(column *models.Column) string {
	return TitleStyle.Render(fmt.Sprintf("%s (%d)", column.Title, len(column.Tickets)))
}

func renderScrollIndicator(show bool, text string) string {
	if !show {
		return "\n"
	}
	return IndicatorStyle.Render(text) + "\n"
}
