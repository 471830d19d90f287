package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

func column(title string, n int) *models.Column {
	col := &models.Column{Status: models.StatusToDo, Title: title, Tickets: []*models.Ticket{}}
	for i := 1; i <= n; i++ {
		col.Tickets = append(col.Tickets, &models.Ticket{
			ID: i, Title: fmt.Sprintf("ticket %d", i), Priority: models.PriorityLow, PriorityColor: "#28a745",
		})
	}
	return col
}

func TestRenderColumnHeader(t *testing.T) {
	tests := []struct {
		name     string
		column   *models.Column
		wantText string
	}{
		{"empty column", column("To Do", 0), "To Do (0)"},
		{"single ticket", column("In Progress", 1), "In Progress (1)"},
		{"many tickets", column("Done", 42), "Done (42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderColumnHeader(tt.column), tt.wantText)
		})
	}
}

func TestRenderScrollIndicator(t *testing.T) {
	shown := renderScrollIndicator(true, "▲ more above")
	assert.Contains(t, shown, "more above")
	assert.True(t, strings.HasSuffix(shown, "\n"))

	assert.Equal(t, "\n", renderScrollIndicator(false, "▲ more above"))
}

func TestRenderColumn(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Contains(t, RenderColumn(column("To Do", 0), false, -1, 0, 0), "No tickets")
	})

	t.Run("auto height shows every ticket", func(t *testing.T) {
		out := RenderColumn(column("To Do", 4), true, 0, 0, 0)
		for i := 1; i <= 4; i++ {
			assert.Contains(t, out, fmt.Sprintf("ticket %d", i))
		}
		assert.NotContains(t, out, "more below")
	})

	t.Run("fixed height scrolls", func(t *testing.T) {
		height := 3*TicketCardHeight + columnBorderOverhead + headerLines + topIndicatorLines + 1
		assert.Equal(t, 3, VisibleTickets(height))

		out := RenderColumn(column("To Do", 6), true, 4, height, 2)
		assert.Contains(t, out, "more above")
		assert.Contains(t, out, "more below")
		assert.NotContains(t, out, "ticket 1")
		assert.Contains(t, out, "ticket 3")
		assert.Contains(t, out, "ticket 5")
		assert.NotContains(t, out, "ticket 6")
	})
}

func TestVisibleTicketsNeverZero(t *testing.T) {
	assert.Equal(t, 1, VisibleTickets(1))
}

func TestRenderTicket(t *testing.T) {
	points := 5
	name, color := "Backend", "#112233"
	ticket := &models.Ticket{
		ID: 7, Title: strings.Repeat("x", 40), Priority: models.PriorityHigh, PriorityColor: "#dc3545",
		StoryPoints: &points, EpicName: &name, EpicColor: &color,
	}

	out := RenderTicket(ticket, false)
	assert.Contains(t, out, "#7")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "5pt")
	assert.Contains(t, out, "[Backend]")

	bare := RenderTicket(&models.Ticket{ID: 1, Title: "bare", Priority: models.PriorityLow}, true)
	assert.Contains(t, bare, "no epic")
	assert.Contains(t, bare, "no points")
}

func TestRenderStatusBar(t *testing.T) {
	assert.Contains(t, RenderStatusBar(StatusBarProps{Width: 80, Connected: true}), "live")
	assert.Contains(t, RenderStatusBar(StatusBarProps{Width: 80}), "offline")
}
