// Package daemon relays board change events between paso processes.
// Every CLI invocation and open TUI connects to one Unix socket; an event
// published by one of them is broadcast to all, so open boards can reload.
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

	"github.com/thenoetrevino/paso/internal/events"
)

const (
	pingInterval   = 30 * time.Second
	healthInterval = 60 * time.Second
	staleAfter     = 90 * time.Second
)

// client is one connected process
type client struct {
	conn      net.Conn
	send      chan events.Message
	lastPong  time.Time
	mu        sync.Mutex // protects lastPong
	closeOnce sync.Once
}

func (c *client) touch() {
	c.mu.Lock()
	c.lastPong = time.Now()
	c.mu.Unlock()
}

func (c *client) idle(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastPong)
}

// Server is the paso event daemon
type Server struct {
	socketPath       string
	listener         *net.UnixListener
	clients          map[*client]bool
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	broadcast        chan events.Event
	metrics          *Metrics
	logger           *slog.Logger
	sequenceCounter  atomic.Int64
	clientBufferSize int
	shutdownOnce     sync.Once
}

// getEnvInt reads a positive integer from key, or returns defaultVal
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer listens on socketPath, replacing a stale socket file.
// A nil logger uses slog.Default().
func NewServer(socketPath string, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(socketPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		socketPath:       socketPath,
		listener:         listener.(*net.UnixListener),
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		broadcast:        make(chan events.Event, getEnvInt("PASO_DAEMON_BROADCAST_BUFFER", 100)),
		metrics:          NewMetrics(),
		logger:           logger,
		clientBufferSize: getEnvInt("PASO_DAEMON_CLIENT_BUFFER", 10),
	}, nil
}

// Metrics returns the live counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the accept, broadcast and health loops until ctx is done
// or Shutdown is called, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("daemon starting", "socket", s.socketPath)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-s.ctx.Done()
		cancel()
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
			s.logger.Error("accept loop failed", "error", err)
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

		// Wake up every second to notice cancellation
		if err := s.listener.SetDeadline(time.Now().Add(time.Second)); err != nil {
			s.logger.Warn("failed to set listener deadline", "error", err)
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
		count := len(s.clients)
		s.mu.Unlock()
		s.metrics.ConnectedClients.Store(int32(count))

		s.logger.Debug("client connected", "clients", count)

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// broadcastLoop stamps each event with the next sequence id and fans it out
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
			s.metrics.Broadcasts.Add(1)

			msg := events.Message{
				Version: events.ProtocolVersion,
				Type:    "event",
				Event:   &event,
			}
			for _, c := range s.snapshotClients() {
				if !s.sendToClient(c, msg) {
					s.logger.Debug("client send queue full, event dropped", "sequence", event.SequenceID)
				}
			}
		}
	}
}

// handleClient reads published events and pongs from c
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		s.logger.Debug("client disconnected", "clients", s.clientCount())
	}()

	decoder := json.NewDecoder(c.conn)
	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			s.logger.Warn("protocol version mismatch", "got", msg.Version, "want", events.ProtocolVersion)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil {
				continue
			}
			s.metrics.EventsReceived.Add(1)
			if err := s.Broadcast(*msg.Event); err != nil {
				s.logger.Warn("event dropped", "type", msg.Event.Type, "error", err)
			}

		case "pong":
			c.touch()
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

// monitorHealth pings every client and drops the ones that stopped answering
func (s *Server) monitorHealth(ctx context.Context) {
	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	healthTicker := time.NewTicker(healthInterval)
	defer healthTicker.Stop()

	ping := events.Message{
		Version: events.ProtocolVersion,
		Type:    "ping",
		Event:   &events.Event{Type: events.EventPing},
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-pingTicker.C:
			for _, c := range s.snapshotClients() {
				s.sendToClient(c, ping)
			}

		case <-healthTicker.C:
			s.removeStale(time.Now())
		}
	}
}

// removeStale drops clients idle for longer than staleAfter
func (s *Server) removeStale(now time.Time) {
	for _, c := range s.snapshotClients() {
		if idle := c.idle(now); idle > staleAfter {
			s.logger.Info("removing stale client", "idle", idle)
			s.removeClient(c)
		}
	}
}

// Broadcast queues event for every connected client without blocking
func (s *Server) Broadcast(event events.Event) (err error) {
	// The channel is closed on shutdown
	defer func() {
		if recover() != nil {
			err = errors.New("daemon shut down")
		}
	}()

	select {
	case s.broadcast <- event:
		return nil
	default:
		return errors.New("broadcast channel full")
	}
}

// Shutdown closes every connection and removes the socket file.
// Only the first call has any effect.
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		s.logger.Info("daemon shutting down", "metrics", s.metrics.Snapshot())

		s.cancel()
		if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			err = closeErr
		}

		s.mu.Lock()
		for c := range s.clients {
			_ = c.conn.Close()
			c.closeOnce.Do(func() { close(c.send) })
		}
		s.clients = make(map[*client]bool)
		s.mu.Unlock()
		s.metrics.ConnectedClients.Store(0)

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			s.logger.Warn("failed to remove socket file", "error", removeErr)
		}

		close(s.broadcast)
	})
	return err
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

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	count := len(s.clients)
	s.mu.Unlock()
	s.metrics.ConnectedClients.Store(int32(count))

	_ = c.conn.Close()
	c.closeOnce.Do(func() { close(c.send) })
}

// sendToClient queues msg for c, reporting false when c's queue is full
func (s *Server) sendToClient(c *client, msg events.Message) (sent bool) {
	// c.send may be closed by a concurrent removeClient
	defer func() {
		if recover() != nil {
			sent = false
		}
	}()

	select {
	case c.send <- msg:
		s.metrics.EventsSent.Add(1)
		return true
	default:
		s.metrics.EventsDropped.Add(1)
		return false
	}
}
