// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/sprintboard/internal/models"
)

// EpicReader defines read operations for epics.
type EpicReader interface {
	GetEpic(ctx context.Context, id int) (*models.Epic, error)
	ListEpics(ctx context.Context) ([]*models.Epic, error)
}

// EpicWriter defines write operations for epics.
type EpicWriter interface {
	CreateEpic(ctx context.Context, name, color string) (*models.Epic, error)
}

// SprintReader defines read operations for sprints.
type SprintReader interface {
	GetSprint(ctx context.Context, id int) (*models.Sprint, error)
	ListSprints(ctx context.Context) ([]*models.Sprint, error)
}

// SprintWriter defines write operations for sprints.
type SprintWriter interface {
	CreateSprint(ctx context.Context, params SprintParams) (*models.Sprint, error)
	UpdateSprintStatus(ctx context.Context, id int, status models.SprintStatus) (int64, error)
}

// TicketReader defines read operations for tickets. Returned tickets carry
// the display fields of their epic and sprint.
type TicketReader interface {
	GetTicket(ctx context.Context, id int) (*models.Ticket, error)
	ListTickets(ctx context.Context) ([]*models.Ticket, error)
	ListTicketsBySprint(ctx context.Context, sprintID int) ([]*models.Ticket, error)
}

// TicketWriter defines write operations for tickets.
type TicketWriter interface {
	CreateTicket(ctx context.Context, params TicketParams) (*models.Ticket, error)
	UpdateTicketStatus(ctx context.Context, id int, status models.Status) (int64, error)
	DeleteTicket(ctx context.Context, id int) (int64, error)
}

// Cascader removes a parent row after clearing every reference to it.
type Cascader interface {
	CascadeDelete(ctx context.Context, spec CascadeSpec) (*models.CascadeResult, error)
}

// AnalyticsReader runs the aggregate queries behind the analytics views.
type AnalyticsReader interface {
	OverviewCounts(ctx context.Context) (*models.Overview, error)
	CompletedSprintVelocity(ctx context.Context, limit int) ([]*models.SprintVelocity, error)
}

// DataStore is the full record store used by the board and analytics services.
// Consumers can depend on the smaller interfaces for clearer dependencies.
type DataStore interface {
	EpicReader
	EpicWriter
	SprintReader
	SprintWriter
	TicketReader
	TicketWriter
	Cascader
	AnalyticsReader
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
