package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/thenoetrevino/sprintboard/internal/models"
)

// timeLayout is fixed-width so that TEXT timestamps sort chronologically
const timeLayout = "2006-01-02 15:04:05.000000"

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// now returns the current time formatted for storage
func now() string {
	return time.Now().UTC().Format(timeLayout)
}

// parseTime converts a stored timestamp to time.Time.
// Returns zero time if the value cannot be parsed.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullInt64ToPtr converts sql.NullInt64 to *int.
// Returns nil if the value is not valid.
func nullInt64ToPtr(nv sql.NullInt64) *int {
	if nv.Valid {
		val := int(nv.Int64)
		return &val
	}
	return nil
}

// nullStringToPtr converts sql.NullString to *string.
// Returns nil if the value is not valid.
func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		s := ns.String
		return &s
	}
	return nil
}

// nullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// intPtrToArg converts an optional int into a query argument (NULL when nil)
func intPtrToArg(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

// stringToNullable stores empty strings as NULL
func stringToNullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// inClause returns "?, ?, ..." for the values along with their arguments
func inClause(values []string) (string, []any) {
	marks := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		marks[i] = "?"
		args[i] = v
	}
	return strings.Join(marks, ", "), args
}

// statusCase returns a SQL expression mapping column to its canonical status
// by the models.NormalizeStatus rule: exact accepted spellings after trimming
// whitespace, anything else is ToDo.
func statusCase(column string) (string, []any) {
	trimmed := "trim(" + column + ", char(32, 9, 10, 11, 12, 13))"

	var (
		b    strings.Builder
		args []any
	)
	b.WriteString("CASE")
	for _, s := range []models.Status{models.StatusDone, models.StatusInProgress} {
		marks, spellings := inClause(s.Spellings())
		fmt.Fprintf(&b, " WHEN %s IN (%s) THEN ?", trimmed, marks)
		args = append(args, spellings...)
		args = append(args, string(s))
	}
	b.WriteString(" ELSE ? END")
	args = append(args, string(models.StatusToDo))
	return b.String(), args
}
