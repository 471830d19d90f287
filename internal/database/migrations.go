package database

import (
	"context"
	"database/sql"
	"fmt"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS epics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			color TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sprints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			goal TEXT,
			created_at TEXT NOT NULL
		)`,
		// References carry no ON DELETE action: clearing them is the job of
		// the cascade transaction, so a bare delete of a referenced row fails.
		`CREATE TABLE IF NOT EXISTS tickets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL,
			priority TEXT NOT NULL,
			priority_color TEXT,
			epic_id INTEGER,
			sprint_id INTEGER,
			story_points INTEGER CHECK (story_points IS NULL OR story_points BETWEEN 1 AND 100),
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			FOREIGN KEY (epic_id) REFERENCES epics (id),
			FOREIGN KEY (sprint_id) REFERENCES sprints (id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tickets_epic ON tickets(epic_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tickets_sprint ON tickets(sprint_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_sprints_status_end ON sprints(status, end_date)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
