package ticket

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintboard/internal/cli"
	"github.com/thenoetrevino/sprintboard/internal/testutil"
	testcli "github.com/thenoetrevino/sprintboard/internal/testutil/cli"
)

func TestCreateTicket_Positive(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	epicID := testutil.CreateTestEpic(t, db, "Backend", "#112233")

	t.Run("quiet prints only the ID", func(t *testing.T) {
		res := testcli.ExecuteCLICommand(t, app, TicketCmd(),
			[]string{"create", "--title", "Simple", "--quiet"})
		require.NoError(t, res.Err)

		idStr := strings.TrimSpace(res.Stdout)
		assert.Regexp(t, `^\d+$`, idStr)

		var title, status string
		err := db.QueryRowContext(context.Background(),
			"SELECT title, status FROM tickets WHERE id = ?", idStr).Scan(&title, &status)
		require.NoError(t, err)
		assert.Equal(t, "Simple", title)
		assert.Equal(t, "ToDo", status)
	})

	t.Run("json envelope carries the joined ticket", func(t *testing.T) {
		res := testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{
			"create", "--title", "Fix bug", "--priority", "high",
			"--epic", fmt.Sprint(epicID), "--points", "5", "--json",
		})
		require.NoError(t, res.Err)

		out := testutil.ParseJSON(t, res.Stdout)
		assert.Equal(t, true, out["success"])
		data := out["data"].(map[string]any)
		assert.Equal(t, "High", data["priority"])
		assert.Equal(t, "#dc3545", data["priority_color"])
		assert.Equal(t, "Backend", data["epic_name"])
		assert.EqualValues(t, 5, data["story_points"])
		assert.Nil(t, data["sprint_id"])
	})

	t.Run("description from stdin", func(t *testing.T) {
		cmd := TicketCmd()
		cmd.SetIn(strings.NewReader("# Notes\n\nbody\n"))
		res := testcli.ExecuteCLICommand(t, app, cmd,
			[]string{"create", "--title", "Spike", "--description", "-", "--quiet"})
		require.NoError(t, res.Err)

		var description string
		err := db.QueryRowContext(context.Background(),
			"SELECT description FROM tickets WHERE id = ?", strings.TrimSpace(res.Stdout)).Scan(&description)
		require.NoError(t, err)
		assert.Equal(t, "# Notes\n\nbody", description)
	})

	t.Run("human output", func(t *testing.T) {
		res := testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"create", "--title", "Readable"})
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Created")
		assert.Contains(t, res.Stdout, "Readable")
	})
}

func TestCreateTicket_Negative(t *testing.T) {
	db, app := testcli.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"missing title", []string{"create"}, cli.ExitUsage, "--title is required"},
		{"empty title", []string{"create", "--title", "  "}, cli.ExitValidation, "title"},
		{"bad priority", []string{"create", "--title", "x", "--priority", "urgent"}, cli.ExitValidation, "priority"},
		{"zero points", []string{"create", "--title", "x", "--points", "0"}, cli.ExitValidation, "story points"},
		{"too many points", []string{"create", "--title", "x", "--points", "101"}, cli.ExitValidation, "story points"},
		{"unknown epic", []string{"create", "--title", "x", "--epic", "42"}, cli.ExitNotFound, "epic"},
		{"unknown sprint", []string{"create", "--title", "x", "--sprint", "42"}, cli.ExitNotFound, "sprint"},
		{"negative epic", []string{"create", "--title", "x", "--epic=-3"}, cli.ExitValidation, "epic"},
		{"negative sprint", []string{"create", "--title", "x", "--sprint=-1"}, cli.ExitValidation, "sprint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testcli.ExecuteCLICommand(t, app, TicketCmd(), tt.args)
			require.Error(t, res.Err)
			assert.Equal(t, tt.wantCode, res.ExitCode())
			assert.Contains(t, strings.ToLower(res.Stderr), tt.wantErr)
			assert.Empty(t, res.Stdout)
		})
	}

	assert.Zero(t, testutil.CountRows(t, db, "tickets"))

	t.Run("json errors go to stdout", func(t *testing.T) {
		res := testcli.ExecuteCLICommand(t, app, TicketCmd(),
			[]string{"create", "--title", "x", "--epic", "42", "--json"})
		require.Error(t, res.Err)

		out := testutil.ParseJSON(t, res.Stdout)
		assert.Equal(t, false, out["success"])
		errData := out["error"].(map[string]any)
		assert.Equal(t, "TICKET_NOT_FOUND", errData["code"])
		assert.NotEmpty(t, errData["suggestion"])
	})
}

func TestListTickets(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	sprintID := testutil.CreateTestSprint(t, db, "Sprint 1", "2024-01-01", "2024-01-14")
	epicID := testutil.CreateTestEpic(t, db, "Backend", "#112233")

	a := testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "a", SprintID: sprintID})
	b := testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "b", Status: "In Progress", SprintID: sprintID, EpicID: epicID})
	c := testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "c", Status: "InProgress"})

	ids := func(t *testing.T, args ...string) []string {
		res := testcli.ExecuteCLICommand(t, app, TicketCmd(), append([]string{"list", "--quiet"}, args...))
		require.NoError(t, res.Err)
		return strings.Fields(res.Stdout)
	}

	assert.Equal(t, []string{fmt.Sprint(a), fmt.Sprint(b), fmt.Sprint(c)}, ids(t))
	assert.Equal(t, []string{fmt.Sprint(a), fmt.Sprint(b)}, ids(t, "--sprint", fmt.Sprint(sprintID)))
	assert.Equal(t, []string{fmt.Sprint(b)}, ids(t, "--epic", fmt.Sprint(epicID)))
	// Legacy and canonical spellings filter together
	assert.Equal(t, []string{fmt.Sprint(b), fmt.Sprint(c)}, ids(t, "--status", "In Progress"))
	assert.Empty(t, ids(t, "--status", "Done"))

	t.Run("invalid status filter", func(t *testing.T) {
		res := testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"list", "--status", "Blocked"})
		assert.Equal(t, cli.ExitValidation, res.ExitCode())
	})

	t.Run("empty human list", func(t *testing.T) {
		res := testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"list", "--epic", "999"})
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "No tickets")
	})
}

func TestMoveTicket(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	id := testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "move me", Status: "To Do"})

	status := func() string {
		var s string
		require.NoError(t, db.QueryRowContext(context.Background(),
			"SELECT status FROM tickets WHERE id = ?", id).Scan(&s))
		return s
	}

	res := testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"move", fmt.Sprint(id), "In Progress"})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "In Progress")
	assert.Equal(t, "InProgress", status())

	res = testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"move", fmt.Sprint(id), "InProgress", "--quiet"})
	require.NoError(t, res.Err)
	assert.Equal(t, fmt.Sprint(id), strings.TrimSpace(res.Stdout))

	res = testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"move", fmt.Sprint(id), "Blocked"})
	assert.Equal(t, cli.ExitValidation, res.ExitCode())
	assert.Equal(t, "InProgress", status())

	res = testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"move", "999", "Done"})
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())

	res = testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"move", "abc", "Done"})
	assert.Equal(t, cli.ExitUsage, res.ExitCode())
}

func TestShowAndDeleteTicket(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	epicID := testutil.CreateTestEpic(t, db, "Backend", "#112233")
	id := testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "detailed", EpicID: epicID, StoryPoints: 3})

	res := testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"show", fmt.Sprint(id)})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "detailed")
	assert.Contains(t, res.Stdout, "Backend")
	assert.Contains(t, res.Stdout, "To Do")

	res = testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"delete", fmt.Sprint(id), "--json"})
	require.NoError(t, res.Err)
	data := testutil.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.EqualValues(t, 1, data["changes"])

	res = testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"delete", fmt.Sprint(id), "--json"})
	require.NoError(t, res.Err)
	data = testutil.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.EqualValues(t, 0, data["changes"])

	res = testcli.ExecuteCLICommand(t, app, TicketCmd(), []string{"show", fmt.Sprint(id)})
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
}

func TestFilterTickets(t *testing.T) {
	assert.Empty(t, filterTickets(nil, 0, 0, ""))
	assert.NotNil(t, filterTickets(nil, 0, 0, ""))
}
