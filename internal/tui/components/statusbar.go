package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width     int
	Connected bool
	Help      string // short help line
}

// RenderStatusBar renders the connection state on the left and key help on the right
func RenderStatusBar(props StatusBarProps) string {
	leftText := "● live"
	if !props.Connected {
		leftText = "○ offline"
	}

	leftRendered := SubtleStyle.Render(leftText)
	rightRendered := props.Help

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
