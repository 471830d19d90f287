package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/sprintboard/internal/models"
)

// AnalyticsRepo runs read-only aggregate queries
type AnalyticsRepo struct {
	db *sql.DB
}

// OverviewCounts aggregates ticket and story point totals across the board.
// Statuses are normalized in SQL by the same rule as models.NormalizeStatus,
// so unknown values count as ToDo.
// CompletionRate is left for the caller.
func (r *AnalyticsRepo) OverviewCounts(ctx context.Context) (*models.Overview, error) {
	statusExpr, statusArgs := statusCase("status")

	query := fmt.Sprintf(`
		SELECT COUNT(*),
		       COALESCE(SUM(COALESCE(story_points, 0)), 0),
		       COALESCE(SUM(CASE WHEN norm = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN norm = ? THEN COALESCE(story_points, 0) ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN norm = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN norm = ? THEN 1 ELSE 0 END), 0)
		FROM (SELECT story_points, %s AS norm FROM tickets)`, statusExpr)

	args := append(statusArgs,
		string(models.StatusDone), string(models.StatusDone),
		string(models.StatusToDo), string(models.StatusInProgress))

	overview := &models.Overview{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&overview.TotalTickets,
		&overview.TotalStoryPoints,
		&overview.CompletedTickets,
		&overview.CompletedStoryPoints,
		&overview.TodoTickets,
		&overview.InProgressTickets,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tickets: %w", err)
	}
	return overview, nil
}

// CompletedSprintVelocity returns per-sprint ticket and story point counts
// for the most recently ended completed sprints. Only the sprint status
// decides inclusion.
func (r *AnalyticsRepo) CompletedSprintVelocity(ctx context.Context, limit int) ([]*models.SprintVelocity, error) {
	statusExpr, statusArgs := statusCase("t.status")

	query := fmt.Sprintf(`
		SELECT s.id, s.name, s.start_date, s.end_date,
		       COUNT(t.id),
		       COALESCE(SUM(CASE WHEN %[1]s = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(COALESCE(t.story_points, 0)), 0),
		       COALESCE(SUM(CASE WHEN %[1]s = ? THEN COALESCE(t.story_points, 0) ELSE 0 END), 0)
		FROM sprints s
		LEFT JOIN tickets t ON t.sprint_id = s.id
		WHERE s.status = ?
		GROUP BY s.id
		ORDER BY s.end_date DESC, s.id DESC
		LIMIT ?`, statusExpr)

	args := make([]any, 0, 2*len(statusArgs)+4)
	args = append(args, statusArgs...)
	args = append(args, string(models.StatusDone))
	args = append(args, statusArgs...)
	args = append(args, string(models.StatusDone))
	args = append(args, string(models.SprintCompleted), limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sprint velocity: %w", err)
	}
	defer rows.Close()

	sprints := []*models.SprintVelocity{}
	for rows.Next() {
		v := &models.SprintVelocity{}
		if err := rows.Scan(
			&v.ID, &v.Name, &v.StartDate, &v.EndDate,
			&v.TotalTickets, &v.CompletedTickets,
			&v.TotalStoryPoints, &v.CompletedStoryPoints,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sprint velocity: %w", err)
		}
		sprints = append(sprints, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sprints, nil
}
