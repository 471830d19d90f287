package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/sprintboard/internal/models"
)

// EpicRepo handles pure data access for epics
type EpicRepo struct {
	db *sql.DB
}

// CreateEpic inserts a new epic and returns it
func (r *EpicRepo) CreateEpic(ctx context.Context, name, color string) (*models.Epic, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO epics (name, color) VALUES (?, ?)`,
		name, color,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert epic: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get epic id: %w", err)
	}

	return &models.Epic{ID: int(id), Name: name, Color: color}, nil
}

// GetEpic retrieves an epic by ID along with its ticket count
func (r *EpicRepo) GetEpic(ctx context.Context, id int) (*models.Epic, error) {
	epic := &models.Epic{}
	err := r.db.QueryRowContext(ctx,
		`SELECT e.id, e.name, e.color,
		        (SELECT COUNT(*) FROM tickets t WHERE t.epic_id = e.id)
		 FROM epics e WHERE e.id = ?`,
		id,
	).Scan(&epic.ID, &epic.Name, &epic.Color, &epic.TicketCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFoundError("epic", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get epic %d: %w", id, err)
	}
	return epic, nil
}

// ListEpics retrieves all epics in creation order with their ticket counts
func (r *EpicRepo) ListEpics(ctx context.Context) ([]*models.Epic, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT e.id, e.name, e.color, COUNT(t.id)
		 FROM epics e
		 LEFT JOIN tickets t ON t.epic_id = e.id
		 GROUP BY e.id
		 ORDER BY e.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list epics: %w", err)
	}
	defer rows.Close()

	epics := []*models.Epic{}
	for rows.Next() {
		epic := &models.Epic{}
		if err := rows.Scan(&epic.ID, &epic.Name, &epic.Color, &epic.TicketCount); err != nil {
			return nil, fmt.Errorf("failed to scan epic: %w", err)
		}
		epics = append(epics, epic)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return epics, nil
}
