package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"
)

// ErrQueueFull is returned by SendEvent when the batch queue cannot take more events
var ErrQueueFull = errors.New("event queue full")

// Client is a connection to the paso daemon.
// Outgoing events are coalesced per debounce window; incoming events are
// deduplicated by sequence id and the connection is re-established on loss.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	// Batching configuration
	eventQueue   chan Event
	debounce     time.Duration
	closed       bool
	batcherOnce  sync.Once
	batcherAlive bool
	batcherDone  chan struct{}

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	lastSequence int64

	ctx    context.Context
	cancel context.CancelFunc
}

// NewClient creates a client for socketPath but does not connect.
// PASO_EVENT_DEBOUNCE_MS overrides the 100ms batching window.
func NewClient(socketPath string) *Client {
	debounceMs := 100
	if envVal := os.Getenv("PASO_EVENT_DEBOUNCE_MS"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounceMs = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		eventQueue:  make(chan Event, 100),
		debounce:    time.Duration(debounceMs) * time.Millisecond,
		maxRetries:  5,
		baseDelay:   time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}
}

// Connect dials the daemon socket and starts the batcher
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("client closed")
	}

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	c.batcherOnce.Do(func() {
		c.batcherAlive = true
		go c.startBatcher()
	})

	return nil
}

// SendEvent queues an event; it never blocks.
func (c *Client) SendEvent(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("client closed")
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// batch accumulates the events of one debounce window.
// A board change outranks an item change since it forces a full remount.
type batch struct {
	pending bool
	event   Event
}

func (b *batch) add(e Event) {
	if !b.pending || e.Type == EventBoardChanged {
		b.event.Type = e.Type
	}
	if e.View != "" {
		b.event.View = e.View
	}
	b.pending = true
}

// startBatcher sends at most one event per debounce window
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var b batch
	flush := func() {
		if !b.pending {
			return
		}
		b.event.Timestamp = time.Now()
		if err := c.sendMessage(Message{Type: "event", Event: &b.event}); err != nil && !isConnectionError(err) {
			slog.Warn("failed to send batched event", "error", err)
		}
		b = batch{}
	}

	for {
		select {
		case <-c.ctx.Done():
			// Close closes the queue first, so anything left is still delivered
			for e := range c.eventQueue {
				b.add(e)
			}
			flush()
			return

		case e, ok := <-c.eventQueue:
			if !ok {
				flush()
				return
			}
			b.add(e)

		case <-ticker.C:
			flush()
		}
	}
}

// sendMessage writes msg to the socket
func (c *Client) sendMessage(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return errors.New("not connected to daemon")
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	msg.Version = ProtocolVersion
	return c.encoder.Encode(msg)
}

// Listen returns a channel of events broadcast by the daemon.
// It reconnects on connection loss and closes the channel when ctx is done
// or reconnection gives up.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()
	connected := c.conn != nil
	c.mu.Unlock()
	if !connected {
		return nil, errors.New("not connected to daemon")
	}

	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		err := c.readEvents(ctx, eventChan)
		if err == nil || ctx.Err() != nil || c.ctx.Err() != nil {
			return
		}

		slog.Info("daemon connection lost, reconnecting", "error", err)
		if !c.reconnect(ctx) {
			slog.Warn("giving up on daemon reconnection", "attempts", c.maxRetries)
			return
		}
		// A restarted daemon counts from one again
		c.lastSequence = 0
		slog.Info("reconnected to daemon")
	}
}

// readEvents decodes messages until the connection fails
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return errors.New("connection closed")
		}
		// The daemon pings every 30s, so a minute of silence means it is gone
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		var msg Message
		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil || msg.Event.SequenceID <= c.lastSequence {
				continue
			}
			c.lastSequence = msg.Event.SequenceID
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return nil
			}

		case "ping":
			if err := c.sendMessage(Message{Type: "pong", Event: &Event{Type: EventPong}}); err != nil && !isConnectionError(err) {
				slog.Warn("failed to send pong", "error", err)
			}
		}
	}
}

func isConnectionError(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, net.ErrClosed)
}

// reconnect retries Connect with exponential backoff: 1s, 2s, 4s, ...
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := range c.maxRetries {
		select {
		case <-ctx.Done():
			return false
		case <-c.ctx.Done():
			return false
		case <-time.After(delay):
		}

		c.mu.Lock()
		if c.conn != nil {
			_ = c.conn.Close()
			c.conn = nil
		}
		c.mu.Unlock()

		if err := c.Connect(ctx); err == nil {
			return true
		}

		slog.Debug("reconnection attempt failed", "attempt", i+1, "max_retries", c.maxRetries, "retry_delay", delay)
		delay *= 2
	}

	return false
}

// Close flushes pending events, stops the batcher and closes the connection.
// Calling it more than once is safe.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.eventQueue)
	alive := c.batcherAlive
	c.mu.Unlock()

	if alive {
		<-c.batcherDone
	}
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}
