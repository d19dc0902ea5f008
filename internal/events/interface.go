package events

import "context"

// Publisher sends change notifications. The app only needs this half.
type Publisher interface {
	SendEvent(event Event) error
}

// EventClient is a full daemon connection: publish, listen, close.
type EventClient interface {
	Publisher

	// Connect establishes a connection to the daemon socket
	Connect(ctx context.Context) error

	// Listen starts listening for events from the daemon
	Listen(ctx context.Context) (<-chan Event, error)

	// Close flushes pending events and closes the connection
	Close() error
}

// Compile-time verification that *Client implements EventClient
var _ EventClient = (*Client)(nil)
