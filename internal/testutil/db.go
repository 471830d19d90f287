package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/sprintboard/internal/database"
)

// SetupTestDB creates an in-memory database with full schema.
// The pool is pinned to one connection so every query sees the same database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func stamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05.000000")
}

// CreateTestEpic creates an epic and returns its ID
func CreateTestEpic(t *testing.T, db *sql.DB, name, color string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO epics (name, color) VALUES (?, ?)", name, color)
	if err != nil {
		t.Fatalf("Failed to create test epic: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CreateTestSprint creates an active sprint and returns its ID
func CreateTestSprint(t *testing.T, db *sql.DB, name, start, end string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO sprints (name, start_date, end_date, status, created_at) VALUES (?, ?, ?, 'active', ?)",
		name, start, end, stamp())
	if err != nil {
		t.Fatalf("Failed to create test sprint: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CompleteTestSprint marks a sprint completed
func CompleteTestSprint(t *testing.T, db *sql.DB, sprintID int) {
	t.Helper()
	if _, err := db.ExecContext(context.Background(),
		"UPDATE sprints SET status = 'completed' WHERE id = ?", sprintID); err != nil {
		t.Fatalf("Failed to complete test sprint: %v", err)
	}
}

// TestTicket describes a row inserted by CreateTestTicket. Zero values mean
// ToDo, Medium, and no epic, sprint or story points.
type TestTicket struct {
	Title       string
	Status      string
	Priority    string
	EpicID      int
	SprintID    int
	StoryPoints int
}

// CreateTestTicket inserts a ticket row directly, bypassing validation so that
// legacy status spellings can be seeded. Returns the ticket ID.
func CreateTestTicket(t *testing.T, db *sql.DB, tt TestTicket) int {
	t.Helper()
	if tt.Status == "" {
		tt.Status = "ToDo"
	}
	if tt.Priority == "" {
		tt.Priority = "Medium"
	}
	orNil := func(v int) any {
		if v == 0 {
			return nil
		}
		return v
	}

	ts := stamp()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO tickets (title, status, priority, priority_color, epic_id, sprint_id, story_points, created_at, updated_at)
		 VALUES (?, ?, ?, '', ?, ?, ?, ?, ?)`,
		tt.Title, tt.Status, tt.Priority, orNil(tt.EpicID), orNil(tt.SprintID), orNil(tt.StoryPoints), ts, ts)
	if err != nil {
		t.Fatalf("Failed to create test ticket: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
