package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintboard/internal/database"
	"github.com/thenoetrevino/sprintboard/internal/models"
	"github.com/thenoetrevino/sprintboard/internal/services/board"
	"github.com/thenoetrevino/sprintboard/internal/testutil"
)

func TestSprintBurndown(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	boards := board.NewService(repo, nil)
	svc := NewService(repo)

	sprint, err := boards.CreateSprint(ctx, board.CreateSprintRequest{
		Name: "Sprint 1", StartDate: "2024-01-01", EndDate: "2024-01-14",
	})
	require.NoError(t, err)

	three, err := boards.CreateTicket(ctx, board.CreateTicketRequest{
		Title: "three", Priority: "Low", SprintID: &sprint.ID, StoryPoints: models.IntPtr(3),
	})
	require.NoError(t, err)
	_, err = boards.CreateTicket(ctx, board.CreateTicketRequest{
		Title: "five", Priority: "Low", SprintID: &sprint.ID, StoryPoints: models.IntPtr(5),
	})
	require.NoError(t, err)
	// Tickets outside the sprint don't count
	_, err = boards.CreateTicket(ctx, board.CreateTicketRequest{
		Title: "elsewhere", Priority: "Low", StoryPoints: models.IntPtr(13),
	})
	require.NoError(t, err)

	_, err = boards.TransitionStatus(ctx, three.ID, "Done")
	require.NoError(t, err)

	burndown, err := svc.SprintBurndown(ctx, sprint.ID)
	require.NoError(t, err)

	assert.Equal(t, "Sprint 1", burndown.Sprint.Name)
	require.Len(t, burndown.Tickets, 2)
	assert.Equal(t, "three", burndown.Tickets[0].Title)
	assert.Equal(t, "five", burndown.Tickets[1].Title)
	assert.Equal(t, 8, burndown.TotalStoryPoints)
	assert.Equal(t, 3, burndown.CompletedStoryPoints)
	assert.Equal(t, 5, burndown.RemainingStoryPoints)
	assert.Equal(t, 2, burndown.TotalTickets)
	assert.Equal(t, 1, burndown.CompletedTickets)
}

func TestSprintBurndownUnknownSprint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))

	burndown, err := svc.SprintBurndown(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, burndown)

	_, err = svc.SprintBurndown(context.Background(), 0)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSummarize(t *testing.T) {
	t.Run("empty sprint", func(t *testing.T) {
		b := Summarize(&models.Sprint{ID: 1}, nil)
		assert.NotNil(t, b.Tickets)
		assert.Zero(t, b.TotalStoryPoints)
		assert.Zero(t, b.RemainingStoryPoints)
	})

	t.Run("nil points count as zero", func(t *testing.T) {
		tickets := []*models.Ticket{
			{ID: 1, Status: "In Progress"},
			{ID: 2, Status: models.StatusDone},
			{ID: 3, Status: models.StatusToDo, StoryPoints: models.IntPtr(8)},
		}
		b := Summarize(&models.Sprint{ID: 1}, tickets)
		assert.Equal(t, 3, b.TotalTickets)
		assert.Equal(t, 1, b.CompletedTickets)
		assert.Equal(t, 8, b.TotalStoryPoints)
		assert.Equal(t, 0, b.CompletedStoryPoints)
		assert.Equal(t, 8, b.RemainingStoryPoints)
	})
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completed, total int
		want             float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{3, 8, 37.5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.completed, tt.total), func(t *testing.T) {
			got := CompletionRate(tt.completed, tt.total)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("empty board", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		overview, err := NewService(database.NewRepository(db)).Overview(ctx)
		require.NoError(t, err)
		assert.Equal(t, &models.Overview{}, overview)
	})

	t.Run("tickets without points", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "a", Status: "Done"})
		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "b"})

		overview, err := NewService(database.NewRepository(db)).Overview(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, overview.TotalTickets)
		assert.Equal(t, 1, overview.CompletedTickets)
		assert.Equal(t, 0.0, overview.CompletionRate)
	})

	t.Run("mixed spellings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "a", Status: "To Do", StoryPoints: 2})
		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "b", Status: "ToDo", StoryPoints: 3})
		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "c", Status: "In Progress"})
		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "d", Status: "Done", StoryPoints: 5})

		overview, err := NewService(database.NewRepository(db)).Overview(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, overview.TotalTickets)
		assert.Equal(t, 10, overview.TotalStoryPoints)
		assert.Equal(t, 1, overview.CompletedTickets)
		assert.Equal(t, 5, overview.CompletedStoryPoints)
		assert.Equal(t, 2, overview.TodoTickets)
		assert.Equal(t, 1, overview.InProgressTickets)
		assert.Equal(t, 50.0, overview.CompletionRate)
	})
}

func TestVelocity(t *testing.T) {
	ctx := context.Background()

	t.Run("no completed sprints", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		// Active sprints are excluded even when they ended long ago
		sprintID := testutil.CreateTestSprint(t, db, "old", "2020-01-01", "2020-01-14")
		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "x", Status: "Done", SprintID: sprintID, StoryPoints: 8})

		v, err := NewService(database.NewRepository(db)).Velocity(ctx)
		require.NoError(t, err)
		assert.NotNil(t, v.Sprints)
		assert.Empty(t, v.Sprints)
		assert.Equal(t, 0.0, v.AverageVelocity)
		assert.Equal(t, 0, v.TotalCompletedStoryPoints)
	})

	t.Run("averages completed points", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		first := testutil.CreateTestSprint(t, db, "one", "2024-01-01", "2024-01-14")
		second := testutil.CreateTestSprint(t, db, "two", "2024-01-15", "2024-01-28")
		testutil.CompleteTestSprint(t, db, first)
		testutil.CompleteTestSprint(t, db, second)

		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "a", Status: "Done", SprintID: first, StoryPoints: 5})
		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "b", Status: "ToDo", SprintID: first, StoryPoints: 3})
		testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "c", Status: "Done", SprintID: second, StoryPoints: 8})

		v, err := NewService(database.NewRepository(db)).Velocity(ctx)
		require.NoError(t, err)
		require.Len(t, v.Sprints, 2)
		assert.Equal(t, "two", v.Sprints[0].Name)
		assert.Equal(t, 13, v.TotalCompletedStoryPoints)
		assert.InDelta(t, 6.5, v.AverageVelocity, 1e-9)
		assert.Equal(t, 2, v.Sprints[1].TotalTickets)
		assert.Equal(t, 8, v.Sprints[1].TotalStoryPoints)
	})
}

func TestMetricsAgreeWithBoard(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	boards := board.NewService(repo, nil)
	svc := NewService(repo)

	sprintID := testutil.CreateTestSprint(t, db, "Sprint 1", "2024-01-01", "2024-01-14")
	testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "lowercase", Status: "done", SprintID: sprintID, StoryPoints: 5})
	testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "unknown", Status: "Blocked", SprintID: sprintID, StoryPoints: 3})
	testutil.CreateTestTicket(t, db, testutil.TestTicket{Title: "finished", Status: "Done", SprintID: sprintID, StoryPoints: 2})

	columns, err := boards.Board(ctx, sprintID)
	require.NoError(t, err)
	require.Len(t, columns, 3)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(columns[0].Tickets), overview.TodoTickets)
	assert.Equal(t, len(columns[1].Tickets), overview.InProgressTickets)
	assert.Equal(t, len(columns[2].Tickets), overview.CompletedTickets)
	assert.Equal(t, 2, overview.TodoTickets, "unknown spellings land in ToDo")

	burndown, err := svc.SprintBurndown(ctx, sprintID)
	require.NoError(t, err)
	assert.Equal(t, overview.CompletedStoryPoints, burndown.CompletedStoryPoints)
	assert.Equal(t, 2, burndown.CompletedStoryPoints)

	testutil.CompleteTestSprint(t, db, sprintID)
	velocity, err := svc.Velocity(ctx)
	require.NoError(t, err)
	require.Len(t, velocity.Sprints, 1)
	assert.Equal(t, burndown.CompletedStoryPoints, velocity.Sprints[0].CompletedStoryPoints)
	assert.Equal(t, burndown.CompletedTickets, velocity.Sprints[0].CompletedTickets)
}
