// Package tui is the terminal board: three status columns over the board
// engine, refreshed on every mutation and every daemon event.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sprintboard/internal/config"
	"github.com/thenoetrevino/sprintboard/internal/events"
	"github.com/thenoetrevino/sprintboard/internal/models"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
	"github.com/thenoetrevino/sprintboard/internal/tui/components"
	"github.com/thenoetrevino/sprintboard/internal/tui/notifications"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	boards board.Service
	cache  *BoardCache
	cfg    *config.Config
	keys   keyMap
	help   help.Model

	client    events.EventPublisher
	eventChan <-chan events.Event
	connected bool

	columns  []*models.Column
	sprints  []*models.Sprint
	sprintID int // events.AllSprints for the whole board
	loaded   bool

	col     int
	rows    []int // selected ticket per column
	offsets []int // first visible ticket per column
	focusID int

	width  int
	height int

	notice   notifications.Notification
	showHelp bool

	// Done tickets with a pending auto-purge
	purging map[int]bool
	// tickets changed elsewhere, purged after the next load if now in Done
	changedElsewhere map[int]bool
}

// New creates the board model. client may be nil, which disables live
// updates.
func New(ctx context.Context, boards board.Service, cfg *config.Config, client events.EventPublisher) Model {
	components.InitStyles(cfg.Theme)
	notifications.Init(cfg.Theme)

	m := Model{
		ctx:      ctx,
		boards:   boards,
		cache:    NewBoardCache(boards),
		cfg:      cfg,
		keys:     newKeyMap(cfg.KeyMappings),
		help:     help.New(),
		client:   client,
		sprintID: events.AllSprints,
		rows:     make([]int, len(models.Statuses)),
		offsets:  make([]int, len(models.Statuses)),
		purging:  map[int]bool{},

		changedElsewhere: map[int]bool{},
	}

	if client != nil {
		ch, err := client.Listen(ctx)
		if err != nil {
			slog.Warn("failed to listen for board events", "error", err)
		} else {
			m.eventChan = ch
			m.connected = true
		}
	}
	return m
}

// Init loads the board and starts listening for daemon events
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoard(), m.listen())
}

// selectedTicket returns the highlighted ticket, or nil
func (m Model) selectedTicket() *models.Ticket {
	if m.col >= len(m.columns) {
		return nil
	}
	tickets := m.columns[m.col].Tickets
	if row := m.rows[m.col]; row < len(tickets) {
		return tickets[row]
	}
	return nil
}

// sprintChoices is the filter cycle: the whole board, then every sprint
func (m Model) sprintChoices() []int {
	choices := []int{events.AllSprints}
	for _, s := range m.sprints {
		choices = append(choices, s.ID)
	}
	return choices
}

func (m Model) sprintName() string {
	for _, s := range m.sprints {
		if s.ID == m.sprintID {
			return s.Name
		}
	}
	return "All tickets"
}
