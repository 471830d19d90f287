package models

// Overview aggregates every ticket on the board
type Overview struct {
	TotalTickets         int     `json:"totalTickets"`
	TotalStoryPoints     int     `json:"totalStoryPoints"`
	CompletedTickets     int     `json:"completedTickets"`
	CompletedStoryPoints int     `json:"completedStoryPoints"`
	TodoTickets          int     `json:"todoTickets"`
	InProgressTickets    int     `json:"inProgressTickets"`
	CompletionRate       float64 `json:"completionRate"`
}

// Burndown is the remaining-vs-total snapshot of a single sprint.
// It reflects current ticket states only; there is no status history.
type Burndown struct {
	Sprint               *Sprint   `json:"sprint"`
	Tickets              []*Ticket `json:"tickets"`
	TotalStoryPoints     int       `json:"totalStoryPoints"`
	CompletedStoryPoints int       `json:"completedStoryPoints"`
	RemainingStoryPoints int       `json:"remainingStoryPoints"`
	TotalTickets         int       `json:"totalTickets"`
	CompletedTickets     int       `json:"completedTickets"`
}

// SprintVelocity holds the aggregated counts for one completed sprint
type SprintVelocity struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	TotalTickets         int    `json:"totalTickets"`
	CompletedTickets     int    `json:"completedTickets"`
	TotalStoryPoints     int    `json:"totalStoryPoints"`
	CompletedStoryPoints int    `json:"completedStoryPoints"`
}

// Velocity summarizes recently completed sprints
type Velocity struct {
	Sprints                   []*SprintVelocity `json:"sprints"`
	AverageVelocity           float64           `json:"averageVelocity"`
	TotalCompletedStoryPoints int               `json:"totalCompletedStoryPoints"`
}

// VelocityWindow is how many completed sprints velocity looks back over
const VelocityWindow = 10
