package models

import "time"

// Ticket is a unit of work on the board, joined with the display fields of
// its epic and sprint. The joined fields are nil when the reference is nil.
type Ticket struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        Status    `json:"status"`
	Priority      Priority  `json:"priority"`
	PriorityColor string    `json:"priority_color"`
	EpicID        *int      `json:"epic_id"`
	SprintID      *int      `json:"sprint_id"`
	StoryPoints   *int      `json:"story_points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Denormalized display fields
	EpicName     *string       `json:"epic_name"`
	EpicColor    *string       `json:"epic_color"`
	SprintName   *string       `json:"sprint_name"`
	SprintStatus *SprintStatus `json:"sprint_status"`
}

// GetID returns the ticket ID (used by quiet CLI output)
func (t *Ticket) GetID() int { return t.ID }

// Points returns the story points, treating nil as zero
func (t *Ticket) Points() int {
	if t.StoryPoints == nil {
		return 0
	}
	return *t.StoryPoints
}

// IsDone reports whether the ticket's normalized status is Done
func (t *Ticket) IsDone() bool {
	return NormalizeStatus(string(t.Status)) == StatusDone
}

// Column is one of the three board buckets
type Column struct {
	Status  Status    `json:"status"`
	Title   string    `json:"title"`
	Tickets []*Ticket `json:"tickets"`
}

// Story point bounds
const (
	MinStoryPoints = 1
	MaxStoryPoints = 100
)
