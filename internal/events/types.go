package events

import (
	"os"
	"path/filepath"
	"time"
)

// ProtocolVersion is stamped on every message the daemon writes
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed" // column config was saved
	EventItemsChanged EventType = "items_changed" // an item was created or updated
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Event is a board change notification
type Event struct {
	Type       EventType
	View       string    `json:",omitempty"` // dimension the change was made under
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Assigned by the daemon, monotonically increasing
}

// Message wraps events and control messages for the wire protocol
type Message struct {
	Version int    `json:",omitempty"`
	Type    string // "event", "ping", "pong"
	Event   *Event `json:",omitempty"`
}

// DefaultSocketPath returns ~/.paso/paso.sock
func DefaultSocketPath() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".paso", "paso.sock")
}
