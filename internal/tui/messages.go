package tui

import (
	"github.com/thenoetrevino/sprintboard/internal/events"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// boardLoadedMsg carries a fresh board for sprintID
type boardLoadedMsg struct {
	sprintID int
	columns  []*models.Column
	sprints  []*models.Sprint
}

type errMsg struct {
	err error
}

// boardEventMsg is a board_changed event relayed by the daemon
type boardEventMsg struct {
	event events.Event
}

// disconnectedMsg means the daemon connection is gone for good
type disconnectedMsg struct{}

// mutatedMsg reports a successful move or delete
type mutatedMsg struct {
	notice  string
	focusID int // ticket to keep selected after the reload, 0 for none
	doneID  int // ticket this mutation moved into Done, 0 for none
}

// purgeMsg fires when a Done ticket's auto-purge delay has elapsed
type purgeMsg struct {
	ticketID int
}
