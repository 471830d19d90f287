package models

import "time"

// DateLayout is the calendar date format used for sprint boundaries
const DateLayout = "2006-01-02"

// Sprint is a time-boxed container of tickets
type Sprint struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	StartDate string       `json:"start_date"` // YYYY-MM-DD
	EndDate   string       `json:"end_date"`   // YYYY-MM-DD
	Status    SprintStatus `json:"status"`
	Goal      string       `json:"goal"`
	CreatedAt time.Time    `json:"created_at"`
}

// GetID returns the sprint ID (used by quiet CLI output)
func (s *Sprint) GetID() int { return s.ID }

// IsCompleted reports whether the sprint has been closed
func (s *Sprint) IsCompleted() bool { return s.Status == SprintCompleted }
