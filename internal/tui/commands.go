package tui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// loadBoard fetches the board for the current filter through the cache
func (m Model) loadBoard() tea.Cmd {
	sprintID := m.sprintID
	return func() tea.Msg {
		columns, err := m.cache.Columns(m.ctx, sprintID)
		if err != nil {
			return errMsg{err: err}
		}
		sprints, err := m.boards.ListSprints(m.ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return boardLoadedMsg{sprintID: sprintID, columns: columns, sprints: sprints}
	}
}

// listen waits for the next daemon event
func (m Model) listen() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	ch := m.eventChan
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return disconnectedMsg{}
			}
			return boardEventMsg{event: event}
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m Model) moveTicket(t *models.Ticket, target models.Status) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.cache.MoveTicket(m.ctx, t.ID, target); err != nil {
			return errMsg{err: err}
		}
		msg := mutatedMsg{notice: fmt.Sprintf("#%d moved to %s", t.ID, target.Title()), focusID: t.ID}
		if target == models.StatusDone {
			msg.doneID = t.ID
		}
		return msg
	}
}

func (m Model) deleteTicket(t *models.Ticket, reason string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.cache.DeleteTicket(m.ctx, t.ID); err != nil {
			return errMsg{err: err}
		}
		return mutatedMsg{notice: fmt.Sprintf("#%d %s", t.ID, reason)}
	}
}

// schedulePurge starts the delay timer for a ticket that just moved into
// Done. Tickets that were already Done are never purged.
func (m Model) schedulePurge(ticketID int) tea.Cmd {
	if !m.cfg.Board.AutoPurgeDone || ticketID == 0 || m.purging[ticketID] {
		return nil
	}
	m.purging[ticketID] = true
	return tea.Tick(m.cfg.Board.AutoPurgeDelay, func(time.Time) tea.Msg {
		return purgeMsg{ticketID: ticketID}
	})
}

func (m Model) column(status models.Status) *models.Column {
	for _, col := range m.columns {
		if col.Status == status {
			return col
		}
	}
	return nil
}
