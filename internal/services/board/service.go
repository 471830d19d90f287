// Package board enforces the ticket workflow and keeps tickets consistent
// with the epics and sprints they reference.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/sprintboard/internal/database"
	"github.com/thenoetrevino/sprintboard/internal/events"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// Service defines all board operations
type Service interface {
	// Tickets
	CreateTicket(ctx context.Context, req CreateTicketRequest) (*models.Ticket, error)
	GetTicket(ctx context.Context, ticketID int) (*models.Ticket, error)
	ListTickets(ctx context.Context) ([]*models.Ticket, error)
	TransitionStatus(ctx context.Context, ticketID int, status string) (*models.Ticket, error)
	DeleteTicket(ctx context.Context, ticketID int) (int64, error)
	Board(ctx context.Context, sprintID int) ([]*models.Column, error)

	// Epics
	CreateEpic(ctx context.Context, req CreateEpicRequest) (*models.Epic, error)
	ListEpics(ctx context.Context) ([]*models.Epic, error)
	DeleteEpic(ctx context.Context, epicID int) (*models.CascadeResult, error)

	// Sprints
	CreateSprint(ctx context.Context, req CreateSprintRequest) (*models.Sprint, error)
	GetSprint(ctx context.Context, sprintID int) (*models.Sprint, error)
	ListSprints(ctx context.Context) ([]*models.Sprint, error)
	SetSprintStatus(ctx context.Context, sprintID int, status string) (*models.Sprint, error)
	DeleteSprint(ctx context.Context, sprintID int) (*models.CascadeResult, error)
}

// CreateTicketRequest holds the fields of a new ticket. Status is not
// settable: every ticket starts in ToDo. A nil EpicID or SprintID means no
// reference.
type CreateTicketRequest struct {
	Title       string
	Description string
	Priority    string
	EpicID      *int
	SprintID    *int
	StoryPoints *int
}

// CreateEpicRequest holds the fields of a new epic. An empty Color picks a
// random one.
type CreateEpicRequest struct {
	Name  string
	Color string
}

// CreateSprintRequest holds the fields of a new sprint
type CreateSprintRequest struct {
	Name      string
	StartDate string
	EndDate   string
	Goal      string
}

// service implements Service
type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new board service. eventClient may be nil.
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// CreateTicket validates the request, resolves its epic and sprint, and
// inserts a ToDo ticket. Nothing is written when validation fails.
func (s *service) CreateTicket(ctx context.Context, req CreateTicketRequest) (*models.Ticket, error) {
	params, err := validateCreateTicket(req)
	if err != nil {
		return nil, err
	}

	if params.EpicID != nil {
		if _, err := s.repo.GetEpic(ctx, *params.EpicID); err != nil {
			return nil, fmt.Errorf("failed to resolve epic: %w", err)
		}
	}
	if params.SprintID != nil {
		if _, err := s.repo.GetSprint(ctx, *params.SprintID); err != nil {
			return nil, fmt.Errorf("failed to resolve sprint: %w", err)
		}
	}

	ticket, err := s.repo.CreateTicket(ctx, params)
	if err != nil {
		slog.Error("failed to create ticket", "title", params.Title, "error", err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.publishBoardEvent("ticket", ticket.ID, sprintScope(ticket.SprintID))
	return ticket, nil
}

func validateCreateTicket(req CreateTicketRequest) (database.TicketParams, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return database.TicketParams{}, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return database.TicketParams{}, ErrTitleTooLong
	}

	priority, err := models.ParsePriority(req.Priority)
	if err != nil {
		return database.TicketParams{}, err
	}

	if req.StoryPoints != nil {
		if p := *req.StoryPoints; p < models.MinStoryPoints || p > models.MaxStoryPoints {
			return database.TicketParams{}, ErrStoryPointsRange
		}
	}
	if req.EpicID != nil && *req.EpicID <= 0 {
		return database.TicketParams{}, ErrInvalidEpicID
	}
	if req.SprintID != nil && *req.SprintID <= 0 {
		return database.TicketParams{}, ErrInvalidSprintID
	}

	return database.TicketParams{
		Title:         title,
		Description:   strings.TrimSpace(req.Description),
		Priority:      priority,
		PriorityColor: priority.Color(),
		EpicID:        req.EpicID,
		SprintID:      req.SprintID,
		StoryPoints:   req.StoryPoints,
	}, nil
}

// GetTicket returns one ticket with its display fields
func (s *service) GetTicket(ctx context.Context, ticketID int) (*models.Ticket, error) {
	if ticketID <= 0 {
		return nil, ErrInvalidTicketID
	}
	return s.repo.GetTicket(ctx, ticketID)
}

// ListTickets returns every ticket in creation order
func (s *service) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	tickets, err := s.repo.ListTickets(ctx)
	if err != nil {
		slog.Error("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// TransitionStatus moves a ticket to any of the three statuses. Moving a
// ticket to the status it already has succeeds and changes nothing else.
func (s *service) TransitionStatus(ctx context.Context, ticketID int, status string) (*models.Ticket, error) {
	if ticketID <= 0 {
		return nil, ErrInvalidTicketID
	}
	target, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if current.Status == target {
		return current, nil
	}

	affected, err := s.repo.UpdateTicketStatus(ctx, ticketID, target)
	if err != nil {
		slog.Error("failed to update ticket status", "ticket_id", ticketID, "status", target, "error", err)
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}
	if affected == 0 {
		return nil, models.NotFoundError("ticket", ticketID)
	}

	updated, err := s.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	s.publishBoardEvent("ticket", ticketID, sprintScope(updated.SprintID))
	return updated, nil
}

// DeleteTicket removes a ticket and returns how many rows were deleted.
// Deleting a missing ticket reports 0 and no error.
func (s *service) DeleteTicket(ctx context.Context, ticketID int) (int64, error) {
	if ticketID <= 0 {
		return 0, ErrInvalidTicketID
	}

	scope := events.AllSprints
	if ticket, err := s.repo.GetTicket(ctx, ticketID); err == nil {
		scope = sprintScope(ticket.SprintID)
	} else if !errors.Is(err, models.ErrNotFound) {
		return 0, err
	}

	affected, err := s.repo.DeleteTicket(ctx, ticketID)
	if err != nil {
		slog.Error("failed to delete ticket", "ticket_id", ticketID, "error", err)
		return 0, fmt.Errorf("failed to delete ticket: %w", err)
	}

	if affected > 0 {
		s.publishBoardEvent("ticket", ticketID, scope)
	}
	return affected, nil
}

// Board returns the tickets of one sprint, or of the whole board when
// sprintID is events.AllSprints, partitioned into columns.
func (s *service) Board(ctx context.Context, sprintID int) ([]*models.Column, error) {
	var (
		tickets []*models.Ticket
		err     error
	)
	if sprintID == events.AllSprints {
		tickets, err = s.repo.ListTickets(ctx)
	} else {
		if _, err := s.repo.GetSprint(ctx, sprintID); err != nil {
			return nil, err
		}
		tickets, err = s.repo.ListTicketsBySprint(ctx, sprintID)
	}
	if err != nil {
		slog.Error("failed to load board", "sprint_id", sprintID, "error", err)
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	return PartitionByColumn(tickets), nil
}

// CreateEpic validates and inserts an epic
func (s *service) CreateEpic(ctx context.Context, req CreateEpicRequest) (*models.Epic, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyEpicName
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = models.RandomColor()
	} else if !models.IsHexColor(color) {
		return nil, ErrInvalidColor
	}

	epic, err := s.repo.CreateEpic(ctx, name, color)
	if err != nil {
		slog.Error("failed to create epic", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create epic: %w", err)
	}

	s.publishBoardEvent("epic", epic.ID, events.AllSprints)
	return epic, nil
}

// ListEpics returns all epics with their ticket counts
func (s *service) ListEpics(ctx context.Context) ([]*models.Epic, error) {
	epics, err := s.repo.ListEpics(ctx)
	if err != nil {
		slog.Error("failed to list epics", "error", err)
		return nil, fmt.Errorf("failed to list epics: %w", err)
	}
	return epics, nil
}

// DeleteEpic clears the epic from its tickets and removes it, atomically
func (s *service) DeleteEpic(ctx context.Context, epicID int) (*models.CascadeResult, error) {
	if epicID <= 0 {
		return nil, ErrInvalidEpicID
	}

	result, err := s.repo.CascadeDelete(ctx, database.EpicCascade(epicID))
	if err != nil {
		slog.Error("failed to delete epic", "epic_id", epicID, "error", err)
		return nil, fmt.Errorf("failed to delete epic: %w", err)
	}

	if result.Deleted {
		s.publishBoardEvent("epic", epicID, events.AllSprints)
	}
	return result, nil
}

// CreateSprint validates and inserts an active sprint. Start and end dates
// are not checked against each other.
func (s *service) CreateSprint(ctx context.Context, req CreateSprintRequest) (*models.Sprint, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptySprintName
	}
	start := strings.TrimSpace(req.StartDate)
	if _, err := time.Parse(models.DateLayout, start); err != nil {
		return nil, ErrInvalidStartDate
	}
	end := strings.TrimSpace(req.EndDate)
	if _, err := time.Parse(models.DateLayout, end); err != nil {
		return nil, ErrInvalidEndDate
	}

	sprint, err := s.repo.CreateSprint(ctx, database.SprintParams{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Goal:      strings.TrimSpace(req.Goal),
	})
	if err != nil {
		slog.Error("failed to create sprint", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create sprint: %w", err)
	}

	s.publishBoardEvent("sprint", sprint.ID, sprint.ID)
	return sprint, nil
}

// GetSprint returns one sprint
func (s *service) GetSprint(ctx context.Context, sprintID int) (*models.Sprint, error) {
	if sprintID <= 0 {
		return nil, ErrInvalidSprintID
	}
	return s.repo.GetSprint(ctx, sprintID)
}

// ListSprints returns all sprints, most recent first
func (s *service) ListSprints(ctx context.Context) ([]*models.Sprint, error) {
	sprints, err := s.repo.ListSprints(ctx)
	if err != nil {
		slog.Error("failed to list sprints", "error", err)
		return nil, fmt.Errorf("failed to list sprints: %w", err)
	}
	return sprints, nil
}

// SetSprintStatus moves a sprint between active and completed
func (s *service) SetSprintStatus(ctx context.Context, sprintID int, status string) (*models.Sprint, error) {
	if sprintID <= 0 {
		return nil, ErrInvalidSprintID
	}
	target, err := models.ParseSprintStatus(status)
	if err != nil {
		return nil, err
	}

	affected, err := s.repo.UpdateSprintStatus(ctx, sprintID, target)
	if err != nil {
		slog.Error("failed to update sprint status", "sprint_id", sprintID, "error", err)
		return nil, fmt.Errorf("failed to update sprint status: %w", err)
	}
	if affected == 0 {
		return nil, models.NotFoundError("sprint", sprintID)
	}

	sprint, err := s.repo.GetSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	s.publishBoardEvent("sprint", sprintID, sprintID)
	return sprint, nil
}

// DeleteSprint clears the sprint from its tickets and removes it, atomically
func (s *service) DeleteSprint(ctx context.Context, sprintID int) (*models.CascadeResult, error) {
	if sprintID <= 0 {
		return nil, ErrInvalidSprintID
	}

	result, err := s.repo.CascadeDelete(ctx, database.SprintCascade(sprintID))
	if err != nil {
		slog.Error("failed to delete sprint", "sprint_id", sprintID, "error", err)
		return nil, fmt.Errorf("failed to delete sprint: %w", err)
	}

	if result.Deleted {
		// Its tickets now belong to no sprint, so everyone refreshes
		s.publishBoardEvent("sprint", sprintID, events.AllSprints)
	}
	return result, nil
}

// sprintScope maps an optional sprint reference to an event scope
func sprintScope(sprintID *int) int {
	if sprintID == nil {
		return events.AllSprints
	}
	return *sprintID
}

const publishRetries = 3

// publishBoardEvent notifies other processes if an event client exists
func (s *service) publishBoardEvent(entity string, entityID, sprintID int) {
	if s.eventClient == nil {
		return
	}

	// The write already committed; a lost event only delays other boards
	// until their next refresh.
	if err := events.PublishWithRetry(s.eventClient, events.BoardChanged(entity, entityID, sprintID), publishRetries); err != nil {
		slog.Warn("failed to send board event", "entity", entity, "id", entityID, "error", err)
	}
}
