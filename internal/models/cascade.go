package models

// CascadeResult reports the outcome of deleting an epic or sprint
type CascadeResult struct {
	AffectedTickets int  `json:"affected_tickets"` // Tickets whose reference was cleared
	Deleted         bool `json:"deleted"`          // Whether the entity row itself was removed
}
