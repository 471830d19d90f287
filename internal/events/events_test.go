package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMatches(t *testing.T) {
	tests := []struct {
		name       string
		eventScope int
		subscribed int
		want       bool
	}{
		{"board-wide event reaches sprint subscriber", AllSprints, 3, true},
		{"board-wide subscriber sees sprint event", 3, AllSprints, true},
		{"same sprint", 3, 3, true},
		{"different sprint", 3, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Type: EventBoardChanged, SprintID: tt.eventScope}
			assert.Equal(t, tt.want, e.Matches(tt.subscribed))
		})
	}
}

func TestMessageWireFormat(t *testing.T) {
	e := BoardChanged("ticket", 7, 2)
	data, err := json.Marshal(Message{Version: ProtocolVersion, Type: "event", Event: &e})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, ProtocolVersion, raw["version"])
	assert.Equal(t, "event", raw["type"])
	assert.NotContains(t, raw, "subscribe")

	inner := raw["event"].(map[string]any)
	assert.Equal(t, "board_changed", inner["type"])
	assert.EqualValues(t, 2, inner["sprint_id"])
	assert.Equal(t, "ticket", inner["entity"])
	assert.EqualValues(t, 7, inner["entity_id"])
}

func TestBatchCollapsesScopes(t *testing.T) {
	t.Run("single event keeps its scope", func(t *testing.T) {
		var b batch
		b.add(BoardChanged("ticket", 1, 5))
		b.add(BoardChanged("ticket", 1, 5))
		assert.True(t, b.pending)
		assert.Equal(t, 5, b.event.SprintID)
		assert.Equal(t, "ticket", b.event.Entity)
		assert.Equal(t, 1, b.event.EntityID)
	})

	t.Run("mixed sprints widen to the board", func(t *testing.T) {
		var b batch
		b.add(BoardChanged("ticket", 1, 5))
		b.add(BoardChanged("ticket", 2, 6))
		assert.Equal(t, AllSprints, b.event.SprintID)
		assert.Empty(t, b.event.Entity)
		assert.Zero(t, b.event.EntityID)
	})
}

func TestClassifyDaemonError(t *testing.T) {
	assert.Nil(t, ClassifyDaemonError(nil))

	tests := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{"missing socket", fmt.Errorf("dial: %w", os.ErrNotExist), ErrSocketNotFound},
		{"permission", fmt.Errorf("dial: %w", os.ErrPermission), ErrSocketPermission},
		{"refused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), ErrConnectionRefused},
		{"other", errors.New("boom"), ErrDaemonNotRunning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derr := ClassifyDaemonError(tt.err)
			require.NotNil(t, derr)
			assert.Equal(t, tt.code, derr.Code)
			assert.Contains(t, derr.Error(), derr.Hint)
		})
	}
}

// retryPublisher fails the first failUntil sends
type retryPublisher struct {
	attempts  int
	failUntil int
	last      Event
}

func (m *retryPublisher) SendEvent(event Event) error {
	m.last = event
	m.attempts++
	if m.attempts <= m.failUntil {
		return errors.New("simulated send failure")
	}
	return nil
}

func (m *retryPublisher) Connect(context.Context) error                { return nil }
func (m *retryPublisher) Listen(context.Context) (<-chan Event, error) { return nil, nil }
func (m *retryPublisher) Subscribe(int) error                          { return nil }
func (m *retryPublisher) Close() error                                 { return nil }

func TestPublishWithRetry(t *testing.T) {
	t.Run("nil client is a no-op", func(t *testing.T) {
		assert.NoError(t, PublishWithRetry(nil, BoardChanged("epic", 1, AllSprints), 3))
	})

	t.Run("first attempt", func(t *testing.T) {
		m := &retryPublisher{}
		require.NoError(t, PublishWithRetry(m, BoardChanged("ticket", 1, 4), 3))
		assert.Equal(t, 1, m.attempts)
		assert.Equal(t, 4, m.last.SprintID)
	})

	t.Run("succeeds after retries", func(t *testing.T) {
		m := &retryPublisher{failUntil: 2}
		require.NoError(t, PublishWithRetry(m, BoardChanged("ticket", 1, 4), 3))
		assert.Equal(t, 3, m.attempts)
	})

	t.Run("gives up", func(t *testing.T) {
		m := &retryPublisher{failUntil: 10}
		assert.Error(t, PublishWithRetry(m, BoardChanged("ticket", 1, 4), 2))
		assert.Equal(t, 2, m.attempts)
	})
}
