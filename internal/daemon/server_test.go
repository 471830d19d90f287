package daemon

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintboard/internal/events"
)

func setupTestDaemon(t *testing.T) (*Server, string) {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "test-sprintboard.sock")

	server, err := NewServer(socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Shutdown() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = server.Start(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(socketPath)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	return server, socketPath
}

func setupTestClient(t *testing.T, socketPath string, sprintID int) <-chan events.Event {
	t.Helper()
	t.Setenv("SPRINTBOARD_EVENT_DEBOUNCE_MS", "10")

	client, err := events.NewClient(socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx))
	require.NoError(t, client.Subscribe(sprintID))

	listenCtx, stop := context.WithCancel(context.Background())
	t.Cleanup(stop)
	ch, err := client.Listen(listenCtx)
	require.NoError(t, err)
	return ch
}

// waitForSubscribers gives the daemon time to process subscribe messages
func waitForSubscribers(t *testing.T, server *Server, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return server.clientCount() == n
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
}

func waitForEvent(t *testing.T, ch <-chan events.Event) events.Event {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return events.Event{}
	}
}

func waitForNoEvent(t *testing.T, ch <-chan events.Event) {
	t.Helper()
	select {
	case event := <-ch:
		t.Fatalf("unexpected event: %+v", event)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewServer(t *testing.T) {
	t.Run("creates nested directory", func(t *testing.T) {
		socketPath := filepath.Join(t.TempDir(), "a", "b", "d.sock")
		server, err := NewServer(socketPath)
		require.NoError(t, err)
		defer func() { _ = server.Shutdown() }()

		_, err = os.Stat(socketPath)
		assert.NoError(t, err)
	})

	t.Run("replaces stale socket file", func(t *testing.T) {
		socketPath := filepath.Join(t.TempDir(), "stale.sock")
		require.NoError(t, os.WriteFile(socketPath, []byte("stale"), 0o600))

		server, err := NewServer(socketPath)
		require.NoError(t, err)
		defer func() { _ = server.Shutdown() }()
	})

	t.Run("buffer sizes from environment", func(t *testing.T) {
		t.Setenv("SPRINTBOARD_DAEMON_BROADCAST_BUFFER", "7")
		t.Setenv("SPRINTBOARD_DAEMON_CLIENT_BUFFER", "3")

		server, err := NewServer(filepath.Join(t.TempDir(), "env.sock"))
		require.NoError(t, err)
		defer func() { _ = server.Shutdown() }()

		assert.Equal(t, 7, cap(server.broadcast))
		assert.Equal(t, 3, server.clientBufferSize)
	})
}

func TestBroadcastSprintFiltering(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	sprintOne := setupTestClient(t, socketPath, 1)
	sprintTwo := setupTestClient(t, socketPath, 2)
	everything := setupTestClient(t, socketPath, events.AllSprints)
	waitForSubscribers(t, server, 3)

	require.NoError(t, server.Broadcast(events.BoardChanged("ticket", 10, 1)))

	got := waitForEvent(t, sprintOne)
	assert.Equal(t, 1, got.SprintID)
	assert.Equal(t, events.EventBoardChanged, got.Type)
	assert.Positive(t, got.SequenceID)

	got = waitForEvent(t, everything)
	assert.Equal(t, 1, got.SprintID)

	waitForNoEvent(t, sprintTwo)

	// Board-wide events reach every subscriber
	require.NoError(t, server.Broadcast(events.BoardChanged("epic", 3, events.AllSprints)))
	waitForEvent(t, sprintOne)
	waitForEvent(t, sprintTwo)
	waitForEvent(t, everything)
}

func TestBroadcastSequenceNumbers(t *testing.T) {
	server, socketPath := setupTestDaemon(t)
	ch := setupTestClient(t, socketPath, events.AllSprints)
	waitForSubscribers(t, server, 1)

	var last int64
	for i := 0; i < 3; i++ {
		require.NoError(t, server.Broadcast(events.BoardChanged("ticket", i, events.AllSprints)))
		got := waitForEvent(t, ch)
		assert.Greater(t, got.SequenceID, last)
		last = got.SequenceID
	}

	snap := server.Metrics().GetSnapshot()
	assert.EqualValues(t, 3, snap.EventsBroadcast)
	assert.EqualValues(t, 1, snap.ConnectedClients)
}

func TestClientPublishedEventsAreRelayed(t *testing.T) {
	server, socketPath := setupTestDaemon(t)

	listener := setupTestClient(t, socketPath, 4)

	t.Setenv("SPRINTBOARD_EVENT_DEBOUNCE_MS", "10")
	publisher, err := events.NewClient(socketPath)
	require.NoError(t, err)
	defer func() { _ = publisher.Close() }()
	require.NoError(t, publisher.Connect(context.Background()))
	waitForSubscribers(t, server, 2)

	require.NoError(t, publisher.SendEvent(events.BoardChanged("ticket", 8, 4)))

	got := waitForEvent(t, listener)
	assert.Equal(t, 4, got.SprintID)
	assert.EqualValues(t, 1, server.Metrics().GetSnapshot().EventsReceived)
}

func TestShutdown(t *testing.T) {
	server, socketPath := setupTestDaemon(t)
	setupTestClient(t, socketPath, events.AllSprints)
	waitForSubscribers(t, server, 1)

	require.NoError(t, server.Shutdown())
	require.NoError(t, server.Shutdown(), "idempotent")

	_, err := os.Stat(socketPath)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 0, server.clientCount())
	assert.Error(t, server.Broadcast(events.BoardChanged("ticket", 1, 1)))
}

func TestMetricsConcurrency(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncEventsSent()
			m.IncEventsReceived()
			m.IncRefreshesTotal()
			_ = m.GetSnapshot()
		}()
	}
	wg.Wait()

	snap := m.GetSnapshot()
	assert.EqualValues(t, 50, snap.EventsSent)
	assert.EqualValues(t, 50, snap.EventsReceived)
	assert.EqualValues(t, 50, snap.EventsBroadcast)
	assert.False(t, snap.StartTime.IsZero())
}
