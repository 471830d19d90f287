package notifications

import "github.com/thenoetrevino/sprintboard/internal/config"

const warningColor = "#FFAF00"

var theme = config.DefaultTheme()

// Init sets the colors notifications are drawn with
func Init(t config.Theme) {
	theme = t
}

type style struct {
	icon       string
	foreground string
}

func (s Severity) style() style {
	switch s {
	case Warning:
		return style{icon: "⚠", foreground: warningColor}
	case Error:
		return style{icon: "✕", foreground: theme.Error}
	default:
		return style{icon: "•", foreground: theme.Accent}
	}
}
