package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/sprintboard/internal/daemon"
	"github.com/thenoetrevino/sprintboard/internal/events"
)

// GetTestSocketPath returns a socket path inside a per-test temp directory
func GetTestSocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test-sprintboard.sock")
}

// SetupTestDaemon starts a daemon on a temporary socket and waits until it
// accepts connections. Shutdown is registered with t.Cleanup.
func SetupTestDaemon(t *testing.T) (*daemon.Server, string) {
	t.Helper()

	socketPath := GetTestSocketPath(t)
	server, err := daemon.NewServer(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}
	t.Cleanup(func() {
		if err := server.Shutdown(); err != nil {
			t.Logf("Warning: daemon shutdown error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		if err := server.Start(ctx); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()

	WaitForCondition(t, 2*time.Second, func() bool {
		_, err := os.Stat(socketPath)
		return err == nil
	}, "daemon socket to be created")

	return server, socketPath
}

// SetupTestClient connects an event client with a short debounce. Close is
// registered with t.Cleanup.
func SetupTestClient(t *testing.T, socketPath string) *events.Client {
	t.Helper()
	t.Setenv("SPRINTBOARD_EVENT_DEBOUNCE_MS", "10")

	client, err := events.NewClient(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("Warning: client close error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect test client: %v", err)
	}
	return client
}

// SetupTestListener connects a client subscribed to sprintID and returns
// its event channel.
func SetupTestListener(t *testing.T, socketPath string, sprintID int) <-chan events.Event {
	t.Helper()

	client := SetupTestClient(t, socketPath)
	if err := client.Subscribe(sprintID); err != nil {
		t.Fatalf("Failed to subscribe: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	ch, err := client.Listen(ctx)
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	return ch
}

// WaitForEvent returns the next event or fails after timeout
func WaitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()
	select {
	case event, ok := <-ch:
		if !ok {
			t.Fatal("event channel closed")
		}
		return event
	case <-time.After(timeout):
		t.Fatalf("Timeout waiting for event after %v", timeout)
		return events.Event{}
	}
}

// WaitForNoEvent fails if any event arrives within timeout
func WaitForNoEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) {
	t.Helper()
	select {
	case event := <-ch:
		t.Fatalf("Unexpected event: %+v", event)
	case <-time.After(timeout):
	}
}

// WaitForCondition polls condition until it holds or timeout elapses
func WaitForCondition(t *testing.T, timeout time.Duration, condition func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Timeout waiting for %s", what)
}
