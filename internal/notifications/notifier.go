package notifications

import (
	"context"
	"log/slog"
	"sync"
)

// Notification is a short user-facing message, e.g. "Bucket 3 created"
type Notification struct {
	Severity Severity
	Message  string
}

// Notifier delivers notifications. Delivery is fire-and-forget: no acknowledgment, no error.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to the Notifier interface
type NotifierFunc func(n Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// LogNotifier writes notifications to a slog logger
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs n at the level matching its severity
func (l LogNotifier) Notify(n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	switch n.Severity {
	case Warning:
		level = slog.LevelWarn
	case Error:
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, n.Message, "notification", true)
}

// Queue buffers notifications until they are drained, e.g. by the CLI after a command
// or by the TUI between renders.
type Queue struct {
	mu      sync.Mutex
	pending []Notification
}

// Notify appends n to the queue
func (q *Queue) Notify(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, n)
}

// Drain returns all queued notifications and empties the queue
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// Multi fans a notification out to every notifier, skipping nil entries
func Multi(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(n Notification) {
		for _, nt := range notifiers {
			if nt != nil {
				nt.Notify(n)
			}
		}
	})
}
