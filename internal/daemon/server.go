// Package daemon relays board_changed events between sprintboard processes
// over a unix socket.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/sprintboard/internal/events"
)

// Health-check timing
const (
	pingInterval   = 30 * time.Second
	healthInterval = 60 * time.Second
	staleAfter     = 90 * time.Second
)

// client is one connected process
type client struct {
	conn      net.Conn
	send      chan events.Message
	sprintID  int
	lastPong  time.Time
	mu        sync.Mutex // Protects sprintID and lastPong
	closeOnce sync.Once
}

func (c *client) subscribedTo() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sprintID
}

// Server fans board events out to subscribed clients
type Server struct {
	socketPath       string
	listener         net.Listener
	clients          map[*client]bool
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	broadcast        chan events.Event
	metrics          *Metrics
	sequenceCounter  atomic.Int64
	clientBufferSize int
	shutdownOnce     sync.Once
}

// getEnvInt reads a positive integer from the environment
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer listens on socketPath, replacing a stale socket file.
func NewServer(socketPath string) (*Server, error) {
	if dir := filepath.Dir(socketPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	listener, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		broadcast:        make(chan events.Event, getEnvInt("SPRINTBOARD_DAEMON_BROADCAST_BUFFER", 100)),
		metrics:          NewMetrics(),
		clientBufferSize: getEnvInt("SPRINTBOARD_DAEMON_CLIENT_BUFFER", 10),
	}, nil
}

// Metrics exposes the live counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the accept, broadcast and health loops until ctx is cancelled
// or Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("daemon listening", "socket_path", s.socketPath)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-s.ctx.Done():
			cancel()
		case <-runCtx.Done():
		}
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(runCtx)
	}()
	go s.broadcastLoop(runCtx)
	go s.monitorHealth(runCtx)

	var err error
	select {
	case <-runCtx.Done():
	case err = <-acceptErr:
		if err != nil {
			slog.Error("accept loop failed", "error", err)
		}
	}

	if shutdownErr := s.Shutdown(); shutdownErr != nil {
		return shutdownErr
	}
	return err
}

func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		// Wake up periodically to notice cancellation
		if ul, ok := s.listener.(*net.UnixListener); ok {
			_ = ul.SetDeadline(time.Now().Add(1 * time.Second))
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()
		s.updateClientCount()

		slog.Debug("client connected", "clients", s.clientCount())

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-s.broadcast:
			if !ok {
				return
			}
			event.SequenceID = s.sequenceCounter.Add(1)
			s.metrics.IncRefreshesTotal()

			msg := events.Message{Version: events.ProtocolVersion, Type: "event", Event: &event}

			s.mu.RLock()
			for c := range s.clients {
				if !event.Matches(c.subscribedTo()) {
					continue
				}
				if !s.sendToClient(c, msg) {
					slog.Warn("client send queue full, event dropped", "sequence", event.SequenceID)
				}
			}
			s.mu.RUnlock()
		}
	}
}

func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		slog.Debug("client disconnected", "clients", s.clientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			slog.Warn("protocol version mismatch", "got", msg.Version, "want", events.ProtocolVersion)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil {
				continue
			}
			s.metrics.IncEventsReceived()
			if err := s.Broadcast(*msg.Event); err != nil {
				slog.Warn("dropping event", "error", err)
			}

		case "subscribe":
			if msg.Subscribe != nil {
				c.mu.Lock()
				c.sprintID = msg.Subscribe.SprintID
				c.mu.Unlock()
				slog.Debug("client subscribed", "sprint_id", msg.Subscribe.SprintID)
			}

		case "pong":
			c.mu.Lock()
			c.lastPong = time.Now()
			c.mu.Unlock()
		}
	}
}

func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)
	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth pings clients and drops the ones that stop answering
func (s *Server) monitorHealth(ctx context.Context) {
	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	healthTicker := time.NewTicker(healthInterval)
	defer healthTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-pingTicker.C:
			ping := events.Message{Version: events.ProtocolVersion, Type: "ping"}
			for _, c := range s.snapshotClients() {
				if !s.sendToClient(c, ping) {
					slog.Warn("failed to queue ping")
				}
			}

		case <-healthTicker.C:
			now := time.Now()
			for _, c := range s.snapshotClients() {
				c.mu.Lock()
				idle := now.Sub(c.lastPong)
				c.mu.Unlock()
				if idle > staleAfter {
					slog.Info("removing stale client", "idle", idle)
					s.removeClient(c)
				}
			}
		}
	}
}

// Broadcast queues an event for delivery without blocking
func (s *Server) Broadcast(event events.Event) (err error) {
	defer func() {
		// Broadcasting after Shutdown closed the channel
		if recover() != nil {
			err = fmt.Errorf("daemon shut down")
		}
	}()

	select {
	case s.broadcast <- event:
		return nil
	default:
		return fmt.Errorf("broadcast channel full")
	}
}

// Shutdown closes the listener and all clients and removes the socket file.
// It is safe to call more than once.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		snap := s.metrics.GetSnapshot()
		slog.Info("daemon shutting down",
			"events_received", snap.EventsReceived,
			"events_sent", snap.EventsSent,
			"uptime", snap.Uptime)

		s.cancel()

		if s.listener != nil {
			if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
				slog.Warn("failed to close listener", "error", err)
			}
		}

		for _, c := range s.snapshotClients() {
			s.removeClient(c)
		}

		if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove socket file", "error", err)
		}

		close(s.broadcast)
	})

	return nil
}

func (s *Server) snapshotClients() []*client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	return clients
}

func (s *Server) clientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int32(s.clientCount()))
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	_, present := s.clients[c]
	delete(s.clients, c)
	c.closeOnce.Do(func() {
		close(c.send)
	})
	s.mu.Unlock()

	if present {
		_ = c.conn.Close()
	}
	s.updateClientCount()
}

// sendToClient queues msg for c. Returns false if the queue is full.
// Callers must hold s.mu (read) or otherwise know c is still registered.
func (s *Server) sendToClient(c *client, msg events.Message) (ok bool) {
	defer func() {
		// c.send was closed by a concurrent removal
		if recover() != nil {
			ok = false
		}
	}()

	select {
	case c.send <- msg:
		s.metrics.IncEventsSent()
		return true
	default:
		return false
	}
}
