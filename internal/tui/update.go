package tui

import (
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sprintboard/internal/events"
	"github.com/thenoetrevino/sprintboard/internal/models"
	"github.com/thenoetrevino/sprintboard/internal/tui/components"
	"github.com/thenoetrevino/sprintboard/internal/tui/notifications"
)

// tabs and status bar
const chromeLines = 4

// Update handles all messages and returns the updated model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.clampSelection()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case boardLoadedMsg:
		if msg.sprintID != m.sprintID {
			// Filter changed while the load was in flight
			return m, nil
		}
		m.columns = msg.columns
		m.sprints = msg.sprints
		m.loaded = true
		m.clampSelection()
		return m, m.purgeChangedElsewhere()

	case boardEventMsg:
		slog.Debug("board changed", "entity", msg.event.Entity, "id", msg.event.EntityID, "sprint", msg.event.SprintID)
		if msg.event.Entity == "ticket" && m.cfg.Board.AutoPurgeDone {
			// Tickets are created in ToDo, so one found in Done after this
			// event was just moved there
			m.changedElsewhere[msg.event.EntityID] = true
		}
		m.cache.Invalidate()
		return m, tea.Batch(m.loadBoard(), m.listen())

	case disconnectedMsg:
		m.connected = false
		m.eventChan = nil
		m.notice = notifications.Notification{Severity: notifications.Warning, Message: "daemon disconnected"}
		return m, nil

	case mutatedMsg:
		m.notice = notifications.Notification{Severity: notifications.Info, Message: msg.notice}
		m.focusID = msg.focusID
		return m, tea.Batch(m.loadBoard(), m.schedulePurge(msg.doneID))

	case purgeMsg:
		delete(m.purging, msg.ticketID)
		done := m.column(models.StatusDone)
		if done == nil {
			return m, nil
		}
		for _, t := range done.Tickets {
			if t.ID == msg.ticketID {
				return m, m.deleteTicket(t, "purged")
			}
		}
		// Moved out of Done before the delay ran out
		return m, nil

	case errMsg:
		if errors.Is(msg.err, models.ErrNotFound) && m.sprintID != events.AllSprints {
			// The filtered sprint was deleted elsewhere
			m.setSprint(events.AllSprints)
			m.notice = notifications.Notification{Severity: notifications.Warning, Message: "sprint no longer exists"}
			return m, m.loadBoard()
		}
		slog.Error("board operation failed", "error", msg.err)
		m.notice = notifications.Notification{Severity: notifications.Error, Message: msg.err.Error()}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}

	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.columns)-1 {
			m.col++
		}

	case key.Matches(msg, m.keys.Up):
		if m.col < len(m.rows) && m.rows[m.col] > 0 {
			m.rows[m.col]--
			m.ensureVisible(m.col)
		}

	case key.Matches(msg, m.keys.Down):
		if m.col < len(m.columns) && m.rows[m.col] < len(m.columns[m.col].Tickets)-1 {
			m.rows[m.col]++
			m.ensureVisible(m.col)
		}

	case key.Matches(msg, m.keys.MoveLeft):
		return m, m.moveSelected(-1)

	case key.Matches(msg, m.keys.MoveRight):
		return m, m.moveSelected(1)

	case key.Matches(msg, m.keys.Delete):
		if t := m.selectedTicket(); t != nil {
			return m, m.deleteTicket(t, "deleted")
		}

	case key.Matches(msg, m.keys.Refresh):
		m.cache.Invalidate()
		return m, m.loadBoard()

	case key.Matches(msg, m.keys.NextSprint):
		return m, m.cycleSprint(1)

	case key.Matches(msg, m.keys.PrevSprint):
		return m, m.cycleSprint(-1)
	}
	return m, nil
}

// purgeChangedElsewhere schedules purges for tickets reported by daemon
// events that are now in Done
func (m Model) purgeChangedElsewhere() tea.Cmd {
	if len(m.changedElsewhere) == 0 {
		return nil
	}
	done := m.column(models.StatusDone)
	if done == nil {
		return nil
	}

	var cmds []tea.Cmd
	for _, t := range done.Tickets {
		if m.changedElsewhere[t.ID] {
			cmds = append(cmds, m.schedulePurge(t.ID))
		}
	}
	clear(m.changedElsewhere)
	return tea.Batch(cmds...)
}

// moveSelected moves the selected ticket dir columns over
func (m *Model) moveSelected(dir int) tea.Cmd {
	t := m.selectedTicket()
	target := m.col + dir
	if t == nil || target < 0 || target >= len(models.Statuses) {
		return nil
	}
	return m.moveTicket(t, models.Statuses[target])
}

func (m *Model) cycleSprint(dir int) tea.Cmd {
	choices := m.sprintChoices()
	idx := 0
	for i, id := range choices {
		if id == m.sprintID {
			idx = i
			break
		}
	}
	next := choices[(idx+dir+len(choices))%len(choices)]
	if next == m.sprintID {
		return nil
	}
	m.setSprint(next)
	m.notice = notifications.Notification{Severity: notifications.Info, Message: "showing " + m.sprintName()}
	return m.loadBoard()
}

// setSprint switches the filter and narrows daemon delivery to match
func (m *Model) setSprint(sprintID int) {
	m.sprintID = sprintID
	for i := range m.rows {
		m.rows[i] = 0
		m.offsets[i] = 0
	}
	if m.client != nil && m.connected {
		if err := m.client.Subscribe(sprintID); err != nil {
			slog.Warn("failed to update subscription", "sprint", sprintID, "error", err)
		}
	}
}

// clampSelection keeps every row index inside its column, then jumps to
// the focused ticket if it is still on the board
func (m *Model) clampSelection() {
	for i := range m.rows {
		n := 0
		if i < len(m.columns) {
			n = len(m.columns[i].Tickets)
		}
		m.rows[i] = max(0, min(m.rows[i], n-1))
	}

	if m.focusID != 0 {
		for c, col := range m.columns {
			for r, t := range col.Tickets {
				if t.ID == m.focusID {
					m.col, m.rows[c] = c, r
				}
			}
		}
		m.focusID = 0
	}

	for i := range m.offsets {
		m.ensureVisible(i)
	}
}

func (m *Model) ensureVisible(col int) {
	visible := components.VisibleTickets(m.columnHeight())
	row := m.rows[col]
	if row < m.offsets[col] {
		m.offsets[col] = row
	} else if row >= m.offsets[col]+visible {
		m.offsets[col] = row - visible + 1
	}
}

func (m Model) columnHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-chromeLines, components.TicketCardHeight+4)
}
