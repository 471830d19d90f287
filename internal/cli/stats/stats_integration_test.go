package stats

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintboard/internal/testutil"
	testcli "github.com/thenoetrevino/sprintboard/internal/testutil/cli"
)

func TestOverviewCommand(t *testing.T) {
	db, app := testcli.SetupCLITest(t)
	testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "a", Status: "To Do", StoryPoints: 2})
	testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "b", Status: "In Progress", StoryPoints: 3})
	testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "c", Status: "Done", StoryPoints: 5})

	res := testcli.ExecuteCLICommand(t, app, StatsCmd(), []string{"overview", "--json"})
	require.NoError(t, res.Err)

	data := testutil.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.EqualValues(t, 3, data["totalTickets"])
	assert.EqualValues(t, 10, data["totalStoryPoints"])
	assert.EqualValues(t, 50, data["completionRate"])

	res = testcli.ExecuteCLICommand(t, app, StatsCmd(), []string{"overview"})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "50.0%")
	assert.Contains(t, res.Stdout, "5/10")
}

func TestVelocityCommand(t *testing.T) {
	db, app := testcli.SetupCLITest(t)

	res := testcli.ExecuteCLICommand(t, app, StatsCmd(), []string{"velocity"})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "No completed sprints yet")

	first := testutil.CreateTestSprint(t, db, "one", "2024-01-01", "2024-01-14")
	second := testutil.CreateTestSprint(t, db, "two", "2024-01-15", "2024-01-28")
	testutil.CompleteTestSprint(t, db, first)
	testutil.CompleteTestSprint(t, db, second)
	testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "a", Status: "Done", SprintID: first, StoryPoints: 4})
	testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "b", Status: "Done", SprintID: second, StoryPoints: 8})

	res = testcli.ExecuteCLICommand(t, app, StatsCmd(), []string{"velocity", "--json"})
	require.NoError(t, res.Err)
	data := testutil.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.EqualValues(t, 6, data["averageVelocity"])
	assert.EqualValues(t, 12, data["totalCompletedStoryPoints"])

	res = testcli.ExecuteCLICommand(t, app, StatsCmd(), []string{"velocity", "--quiet"})
	require.NoError(t, res.Err)
	assert.Equal(t, []string{fmt.Sprint(second), fmt.Sprint(first)}, strings.Fields(res.Stdout))
}
