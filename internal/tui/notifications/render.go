package notifications

import "charm.land/lipgloss/v2"

// RenderInline renders a compact one-line notification for the tab bar
func RenderInline(n Notification) string {
	if n.Message == "" {
		return ""
	}
	style := n.Severity.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(n.Severity == Error).
		Padding(0, 1).
		Render(style.icon + " " + n.Message)
}
