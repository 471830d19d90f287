package events

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDaemon accepts one connection at a time and records decoded messages.
// Messages written to outgoing are sent to the most recent connection.
type fakeDaemon struct {
	socketPath string
	received   chan Message
	outgoing   chan Message
}

func setupFakeDaemon(t *testing.T) *fakeDaemon {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "test.sock")
	listener, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	d := &fakeDaemon{
		socketPath: socketPath,
		received:   make(chan Message, 32),
		outgoing:   make(chan Message, 32),
	}

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer func() { _ = c.Close() }()
				go func() {
					enc := json.NewEncoder(c)
					for msg := range d.outgoing {
						if enc.Encode(msg) != nil {
							return
						}
					}
				}()
				dec := json.NewDecoder(c)
				for {
					var msg Message
					if err := dec.Decode(&msg); err != nil {
						return
					}
					d.received <- msg
				}
			}(conn)
		}
	}()

	return d
}

func (d *fakeDaemon) next(t *testing.T) Message {
	t.Helper()
	select {
	case msg := <-d.received:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for client message")
		return Message{}
	}
}

func connectClient(t *testing.T, socketPath, debounceMs string) *Client {
	t.Helper()
	t.Setenv("SPRINTBOARD_EVENT_DEBOUNCE_MS", debounceMs)

	client, err := NewClient(socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx))
	return client
}

func TestNewClientDebounce(t *testing.T) {
	t.Setenv("SPRINTBOARD_EVENT_DEBOUNCE_MS", "250")
	client, err := NewClient(filepath.Join(t.TempDir(), "x.sock"))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, client.debounce)
	assert.NoError(t, client.Close())

	t.Setenv("SPRINTBOARD_EVENT_DEBOUNCE_MS", "nonsense")
	client, err = NewClient(filepath.Join(t.TempDir(), "y.sock"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, client.debounce)
	assert.NoError(t, client.Close())
}

func TestConnectMissingSocket(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "missing.sock"))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	err = client.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrSocketNotFound, ClassifyDaemonError(err).Code)
}

func TestClientSubscribesOnConnect(t *testing.T) {
	d := setupFakeDaemon(t)
	client := connectClient(t, d.socketPath, "20")

	msg := d.next(t)
	assert.Equal(t, "subscribe", msg.Type)
	assert.Equal(t, ProtocolVersion, msg.Version)
	require.NotNil(t, msg.Subscribe)
	assert.Equal(t, AllSprints, msg.Subscribe.SprintID)

	require.NoError(t, client.Subscribe(9))
	msg = d.next(t)
	assert.Equal(t, 9, msg.Subscribe.SprintID)
}

func TestClientBatchesEvents(t *testing.T) {
	d := setupFakeDaemon(t)
	client := connectClient(t, d.socketPath, "200")
	d.next(t) // subscribe

	for i := 0; i < 5; i++ {
		require.NoError(t, client.SendEvent(BoardChanged("ticket", i, 3)))
	}

	msg := d.next(t)
	assert.Equal(t, "event", msg.Type)
	require.NotNil(t, msg.Event)
	assert.Equal(t, EventBoardChanged, msg.Event.Type)
	assert.Equal(t, 3, msg.Event.SprintID)

	select {
	case extra := <-d.received:
		t.Fatalf("expected a single batched event, got another: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestClientCloseFlushesPending(t *testing.T) {
	d := setupFakeDaemon(t)
	t.Setenv("SPRINTBOARD_EVENT_DEBOUNCE_MS", "10000")
	client, err := NewClient(d.socketPath)
	require.NoError(t, err)
	require.NoError(t, client.Connect(context.Background()))
	d.next(t) // subscribe

	require.NoError(t, client.SendEvent(BoardChanged("epic", 1, AllSprints)))
	require.NoError(t, client.Close())

	msg := d.next(t)
	assert.Equal(t, "event", msg.Type)
	assert.NoError(t, client.Close(), "second close is a no-op")
	assert.Error(t, client.SendEvent(BoardChanged("epic", 1, AllSprints)))
}

func TestClientListenDeliversInOrder(t *testing.T) {
	d := setupFakeDaemon(t)
	client := connectClient(t, d.socketPath, "20")
	d.next(t) // subscribe

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := client.Listen(ctx)
	require.NoError(t, err)

	send := func(seq int64) {
		e := BoardChanged("ticket", 1, 2)
		e.SequenceID = seq
		d.outgoing <- Message{Version: ProtocolVersion, Type: "event", Event: &e}
	}
	send(1)
	send(1) // duplicate
	send(2)

	for _, want := range []int64{1, 2} {
		select {
		case e := <-ch:
			assert.Equal(t, want, e.SequenceID)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", want)
		}
	}
}

func TestClientAnswersPing(t *testing.T) {
	d := setupFakeDaemon(t)
	client := connectClient(t, d.socketPath, "20")
	d.next(t) // subscribe

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := client.Listen(ctx)
	require.NoError(t, err)

	d.outgoing <- Message{Version: ProtocolVersion, Type: "ping"}
	assert.Equal(t, "pong", d.next(t).Type)
}
