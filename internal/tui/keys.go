package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/sprintboard/internal/config"
)

// keyMap is the board's bindings, built from the configured key mappings
type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	Delete     key.Binding
	NextSprint key.Binding
	PrevSprint key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Left:       key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "prev column")),
		Right:      key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		Up:         key.NewBinding(key.WithKeys(km.PrevTicket, "up"), key.WithHelp(km.PrevTicket+"/↑", "prev ticket")),
		Down:       key.NewBinding(key.WithKeys(km.NextTicket, "down"), key.WithHelp(km.NextTicket+"/↓", "next ticket")),
		MoveLeft:   key.NewBinding(key.WithKeys(km.MoveTicketLeft), key.WithHelp(km.MoveTicketLeft, "move left")),
		MoveRight:  key.NewBinding(key.WithKeys(km.MoveTicketRight), key.WithHelp(km.MoveTicketRight, "move right")),
		Delete:     key.NewBinding(key.WithKeys(km.DeleteTicket), key.WithHelp(km.DeleteTicket, "delete")),
		NextSprint: key.NewBinding(key.WithKeys(km.NextSprint), key.WithHelp(km.NextSprint, "next sprint")),
		PrevSprint: key.NewBinding(key.WithKeys(km.PrevSprint), key.WithHelp(km.PrevSprint, "prev sprint")),
		Refresh:    key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Help:       key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.MoveLeft, k.MoveRight, k.Delete},
		{k.PrevSprint, k.NextSprint, k.Refresh},
		{k.Help, k.Quit},
	}
}
