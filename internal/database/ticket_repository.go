package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/sprintboard/internal/models"
)

// TicketParams holds the validated fields of a new ticket. Status is always
// ToDo on insert.
type TicketParams struct {
	Title         string
	Description   string
	Priority      models.Priority
	PriorityColor string
	EpicID        *int
	SprintID      *int
	StoryPoints   *int
}

// TicketRepo handles pure data access for tickets
type TicketRepo struct {
	db *sql.DB
}

// ticketSelect joins each ticket with the display fields of its epic and sprint
const ticketSelect = `
	SELECT t.id, t.title, t.description, t.status, t.priority, t.priority_color,
	       t.epic_id, t.sprint_id, t.story_points, t.created_at, t.updated_at,
	       e.name, e.color, s.name, s.status
	FROM tickets t
	LEFT JOIN epics e ON t.epic_id = e.id
	LEFT JOIN sprints s ON t.sprint_id = s.id`

func scanTicket(row rowScanner) (*models.Ticket, error) {
	var (
		ticket       models.Ticket
		description  sql.NullString
		status       string
		priority     string
		color        sql.NullString
		epicID       sql.NullInt64
		sprintID     sql.NullInt64
		storyPoints  sql.NullInt64
		createdAt    string
		updatedAt    string
		epicName     sql.NullString
		epicColor    sql.NullString
		sprintName   sql.NullString
		sprintStatus sql.NullString
	)
	err := row.Scan(
		&ticket.ID, &ticket.Title, &description, &status, &priority, &color,
		&epicID, &sprintID, &storyPoints, &createdAt, &updatedAt,
		&epicName, &epicColor, &sprintName, &sprintStatus,
	)
	if err != nil {
		return nil, err
	}

	ticket.Description = nullStringToString(description)
	ticket.Status = models.Status(status)
	ticket.Priority = models.Priority(priority)
	ticket.PriorityColor = nullStringToString(color)
	if ticket.PriorityColor == "" {
		ticket.PriorityColor = ticket.Priority.Color()
	}
	ticket.EpicID = nullInt64ToPtr(epicID)
	ticket.SprintID = nullInt64ToPtr(sprintID)
	ticket.StoryPoints = nullInt64ToPtr(storyPoints)
	ticket.CreatedAt = parseTime(createdAt)
	ticket.UpdatedAt = parseTime(updatedAt)
	ticket.EpicName = nullStringToPtr(epicName)
	ticket.EpicColor = nullStringToPtr(epicColor)
	ticket.SprintName = nullStringToPtr(sprintName)
	if sprintStatus.Valid {
		st := models.SprintStatus(sprintStatus.String)
		ticket.SprintStatus = &st
	}
	return &ticket, nil
}

func (r *TicketRepo) queryTickets(ctx context.Context, query string, args ...any) ([]*models.Ticket, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	tickets := []*models.Ticket{}
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tickets, nil
}

// CreateTicket inserts a new ToDo ticket and returns it with its display fields
func (r *TicketRepo) CreateTicket(ctx context.Context, params TicketParams) (*models.Ticket, error) {
	ts := now()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (title, description, status, priority, priority_color,
		                      epic_id, sprint_id, story_points, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		params.Title, stringToNullable(params.Description), string(models.StatusToDo),
		string(params.Priority), params.PriorityColor,
		intPtrToArg(params.EpicID), intPtrToArg(params.SprintID), intPtrToArg(params.StoryPoints),
		ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ticket: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket id: %w", err)
	}

	return r.GetTicket(ctx, int(id))
}

// GetTicket retrieves a single ticket by ID
func (r *TicketRepo) GetTicket(ctx context.Context, id int) (*models.Ticket, error) {
	row := r.db.QueryRowContext(ctx, ticketSelect+` WHERE t.id = ?`, id)
	ticket, err := scanTicket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFoundError("ticket", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket %d: %w", id, err)
	}
	return ticket, nil
}

// ListTickets retrieves every ticket in creation order
func (r *TicketRepo) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	return r.queryTickets(ctx, ticketSelect+` ORDER BY t.created_at, t.id`)
}

// ListTicketsBySprint retrieves the tickets of one sprint in creation order
func (r *TicketRepo) ListTicketsBySprint(ctx context.Context, sprintID int) ([]*models.Ticket, error) {
	return r.queryTickets(ctx, ticketSelect+` WHERE t.sprint_id = ? ORDER BY t.created_at, t.id`, sprintID)
}

// UpdateTicketStatus writes the status column (and updated_at) only
func (r *TicketRepo) UpdateTicketStatus(ctx context.Context, id int, status models.Status) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tickets SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), now(), id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update ticket %d status: %w", id, err)
	}
	return result.RowsAffected()
}

// DeleteTicket removes a ticket and reports how many rows were deleted
func (r *TicketRepo) DeleteTicket(ctx context.Context, id int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete ticket %d: %w", id, err)
	}
	return result.RowsAffected()
}
