package models

// Epic groups tickets under a named, colored category
type Epic struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`        // Hex color code (e.g., "#112233")
	TicketCount int    `json:"ticket_count"` // Tickets currently referencing the epic
}

// GetID returns the epic ID (used by quiet CLI output)
func (e *Epic) GetID() int { return e.ID }
