package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintboard/internal/database"
	"github.com/thenoetrevino/sprintboard/internal/events"
	"github.com/thenoetrevino/sprintboard/internal/models"
	"github.com/thenoetrevino/sprintboard/internal/testutil"
)

func TestBoardEventsThroughDaemon(t *testing.T) {
	ctx := context.Background()
	server, socketPath := testutil.SetupTestDaemon(t)

	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), testutil.SetupTestClient(t, socketPath))

	sprintA, err := svc.CreateSprint(ctx, CreateSprintRequest{Name: "A", StartDate: "2024-01-01", EndDate: "2024-01-14"})
	require.NoError(t, err)
	sprintB, err := svc.CreateSprint(ctx, CreateSprintRequest{Name: "B", StartDate: "2024-01-15", EndDate: "2024-01-28"})
	require.NoError(t, err)

	listener := testutil.SetupTestListener(t, socketPath, sprintA.ID)
	testutil.WaitForCondition(t, 2*time.Second, func() bool {
		return server.Metrics().ConnectedClients.Load() == 2
	}, "listener to connect")
	// Let the sprint-creation events and the subscription settle
	time.Sleep(100 * time.Millisecond)
	drain(listener)

	t.Run("ticket in subscribed sprint is delivered", func(t *testing.T) {
		ticket, err := svc.CreateTicket(ctx, CreateTicketRequest{Title: "a", Priority: "Low", SprintID: &sprintA.ID})
		require.NoError(t, err)

		event := testutil.WaitForEvent(t, listener, 2*time.Second)
		assert.Equal(t, events.EventBoardChanged, event.Type)
		assert.Equal(t, sprintA.ID, event.SprintID)
		assert.Equal(t, "ticket", event.Entity)
		assert.Equal(t, ticket.ID, event.EntityID)
		assert.Positive(t, event.SequenceID)
	})

	t.Run("ticket in another sprint is filtered", func(t *testing.T) {
		_, err := svc.CreateTicket(ctx, CreateTicketRequest{Title: "b", Priority: "Low", SprintID: &sprintB.ID})
		require.NoError(t, err)
		testutil.WaitForNoEvent(t, listener, 300*time.Millisecond)
	})

	t.Run("cascade delete reaches every subscriber", func(t *testing.T) {
		_, err := svc.DeleteSprint(ctx, sprintB.ID)
		require.NoError(t, err)

		event := testutil.WaitForEvent(t, listener, 2*time.Second)
		assert.Equal(t, events.AllSprints, event.SprintID)
	})

	t.Run("rejected mutation publishes nothing", func(t *testing.T) {
		_, err := svc.CreateTicket(ctx, CreateTicketRequest{Title: "", Priority: "Low", SprintID: &sprintA.ID})
		require.ErrorIs(t, err, models.ErrValidation)
		testutil.WaitForNoEvent(t, listener, 300*time.Millisecond)
	})
}

func drain(ch <-chan events.Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
