// Package analytics derives read-only board metrics: overview totals,
// sprint burndown and velocity over recently completed sprints.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/thenoetrevino/sprintboard/internal/database"
	"github.com/thenoetrevino/sprintboard/internal/models"
)

// Service defines all analytics operations
type Service interface {
	Overview(ctx context.Context) (*models.Overview, error)
	SprintBurndown(ctx context.Context, sprintID int) (*models.Burndown, error)
	Velocity(ctx context.Context) (*models.Velocity, error)
}

// store is the slice of the record store analytics needs
type store interface {
	database.SprintReader
	database.TicketReader
	database.AnalyticsReader
}

type service struct {
	repo store
}

// NewService creates a new analytics service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Overview aggregates every ticket on the board
func (s *service) Overview(ctx context.Context) (*models.Overview, error) {
	overview, err := s.repo.OverviewCounts(ctx)
	if err != nil {
		slog.Error("failed to compute overview", "error", err)
		return nil, fmt.Errorf("failed to compute overview: %w", err)
	}
	overview.CompletionRate = CompletionRate(overview.CompletedStoryPoints, overview.TotalStoryPoints)
	return overview, nil
}

// SprintBurndown returns the current remaining-vs-total snapshot of a sprint
func (s *service) SprintBurndown(ctx context.Context, sprintID int) (*models.Burndown, error) {
	if sprintID <= 0 {
		return nil, ErrInvalidSprintID
	}

	sprint, err := s.repo.GetSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.repo.ListTicketsBySprint(ctx, sprintID)
	if err != nil {
		slog.Error("failed to load sprint tickets", "sprint_id", sprintID, "error", err)
		return nil, fmt.Errorf("failed to load sprint tickets: %w", err)
	}

	return Summarize(sprint, tickets), nil
}

// Velocity summarizes the most recently ended completed sprints
func (s *service) Velocity(ctx context.Context) (*models.Velocity, error) {
	sprints, err := s.repo.CompletedSprintVelocity(ctx, models.VelocityWindow)
	if err != nil {
		slog.Error("failed to compute velocity", "error", err)
		return nil, fmt.Errorf("failed to compute velocity: %w", err)
	}

	v := &models.Velocity{Sprints: sprints}
	for _, sp := range sprints {
		v.TotalCompletedStoryPoints += sp.CompletedStoryPoints
	}
	if len(sprints) > 0 {
		v.AverageVelocity = float64(v.TotalCompletedStoryPoints) / float64(len(sprints))
	}
	return v, nil
}

// Summarize totals a sprint's tickets. Tickets without story points count as
// zero points but still count as tickets.
func Summarize(sprint *models.Sprint, tickets []*models.Ticket) *models.Burndown {
	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	b := &models.Burndown{
		Sprint:       sprint,
		Tickets:      tickets,
		TotalTickets: len(tickets),
	}
	for _, t := range tickets {
		b.TotalStoryPoints += t.Points()
		if t.IsDone() {
			b.CompletedTickets++
			b.CompletedStoryPoints += t.Points()
		}
	}
	b.RemainingStoryPoints = b.TotalStoryPoints - b.CompletedStoryPoints
	return b
}

// CompletionRate is completed/total as a percentage rounded to one decimal,
// or 0 when there are no points at all.
func CompletionRate(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
