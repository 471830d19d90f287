// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sprintboard/internal/config"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	theme config.Theme

	TabStyle       lipgloss.Style
	ActiveTabStyle lipgloss.Style
	TabGapStyle    lipgloss.Style

	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of tickets as cards
	CardStyle lipgloss.Style

	// TitleStyle is used for column names
	TitleStyle lipgloss.Style

	SubtleStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	ErrorBannerStyle lipgloss.Style
	InfoBannerStyle  lipgloss.Style

	HelpBoxStyle lipgloss.Style
)

func init() {
	InitStyles(config.DefaultTheme())
}

// InitStyles initializes all styles with the given theme
func InitStyles(t config.Theme) {
	theme = t

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(t.Accent)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		PaddingBottom(1).
		Width(ColumnWidth)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(t.CardBorder)).
		Padding(0).
		Width(ColumnWidth - 4)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Subtle))

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Subtle)).
		Align(lipgloss.Center)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Error)).
		Bold(true).
		Padding(0, 1)

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Accent)).
		Bold(true).
		Padding(0, 1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Accent)).
		Padding(1, 2)
}
