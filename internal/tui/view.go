package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sprintboard/internal/tui/components"
	"github.com/thenoetrevino/sprintboard/internal/tui/notifications"
)

// View renders the board
func (m Model) View() tea.View {
	view := tea.NewView(m.render())
	view.AltScreen = true
	return view
}

func (m Model) render() string {
	if !m.loaded {
		return "Loading board..."
	}

	tabs := components.RenderTabs(m.tabNames(), m.tabIndex(), m.width, notifications.RenderInline(m.notice))

	var body string
	if m.showHelp {
		body = components.HelpBoxStyle.Render(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		body = m.renderColumns()
	}

	status := components.RenderStatusBar(components.StatusBarProps{
		Width:     m.width,
		Connected: m.connected,
		Help:      m.help.ShortHelpView(m.keys.ShortHelp()),
	})

	return strings.Join([]string{tabs, body, status}, "\n")
}

func (m Model) renderColumns() string {
	height := m.columnHeight()
	rendered := make([]string, 0, len(m.columns))
	for i, col := range m.columns {
		rendered = append(rendered, components.RenderColumn(col, i == m.col, m.rows[i], height, m.offsets[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) tabNames() []string {
	names := []string{"All"}
	for _, s := range m.sprints {
		name := s.Name
		if s.IsCompleted() {
			name += " ✓"
		}
		names = append(names, name)
	}
	return names
}

func (m Model) tabIndex() int {
	for i, id := range m.sprintChoices() {
		if id == m.sprintID {
			return i
		}
	}
	return 0
}
