package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/sprintboard/internal/models"
)

// SprintParams holds the validated fields of a new sprint
type SprintParams struct {
	Name      string
	StartDate string
	EndDate   string
	Goal      string
}

// SprintRepo handles pure data access for sprints
type SprintRepo struct {
	db *sql.DB
}

const sprintColumns = `id, name, start_date, end_date, status, goal, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSprint(row rowScanner) (*models.Sprint, error) {
	var (
		sprint    models.Sprint
		status    string
		goal      sql.NullString
		createdAt string
	)
	if err := row.Scan(&sprint.ID, &sprint.Name, &sprint.StartDate, &sprint.EndDate, &status, &goal, &createdAt); err != nil {
		return nil, err
	}
	sprint.Status = models.SprintStatus(status)
	sprint.Goal = nullStringToString(goal)
	sprint.CreatedAt = parseTime(createdAt)
	return &sprint, nil
}

// CreateSprint inserts a new active sprint
func (r *SprintRepo) CreateSprint(ctx context.Context, params SprintParams) (*models.Sprint, error) {
	createdAt := now()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO sprints (name, start_date, end_date, status, goal, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		params.Name, params.StartDate, params.EndDate, string(models.SprintActive),
		stringToNullable(params.Goal), createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert sprint: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get sprint id: %w", err)
	}

	return &models.Sprint{
		ID:        int(id),
		Name:      params.Name,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Status:    models.SprintActive,
		Goal:      params.Goal,
		CreatedAt: parseTime(createdAt),
	}, nil
}

// GetSprint retrieves a sprint by ID
func (r *SprintRepo) GetSprint(ctx context.Context, id int) (*models.Sprint, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sprintColumns+` FROM sprints WHERE id = ?`, id)
	sprint, err := scanSprint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFoundError("sprint", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sprint %d: %w", id, err)
	}
	return sprint, nil
}

// ListSprints retrieves all sprints, most recent start date first
func (r *SprintRepo) ListSprints(ctx context.Context) ([]*models.Sprint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sprintColumns+` FROM sprints ORDER BY start_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sprints: %w", err)
	}
	defer rows.Close()

	sprints := []*models.Sprint{}
	for rows.Next() {
		sprint, err := scanSprint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sprint: %w", err)
		}
		sprints = append(sprints, sprint)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sprints, nil
}

// UpdateSprintStatus sets the lifecycle status of a sprint and reports the
// number of rows affected
func (r *SprintRepo) UpdateSprintStatus(ctx context.Context, id int, status models.SprintStatus) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE sprints SET status = ? WHERE id = ?`,
		string(status), id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update sprint %d status: %w", id, err)
	}
	return result.RowsAffected()
}
