package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/sprintboard/internal/app"
	"github.com/thenoetrevino/sprintboard/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// It lives apart from testutil so service tests can import testutil without a cycle.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	// EventPublisher is nil; publishing is covered by the daemon tests
	return db, app.New(db)
}
