package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics counts daemon traffic. All fields are safe for concurrent use.
type Metrics struct {
	EventsReceived   atomic.Int64 // events published by clients
	EventsSent       atomic.Int64 // messages queued to clients, pings included
	EventsDropped    atomic.Int64 // messages skipped because a client queue was full
	Broadcasts       atomic.Int64
	ConnectedClients atomic.Int32
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// MetricsSnapshot is a point-in-time copy of Metrics
type MetricsSnapshot struct {
	EventsReceived   int64     `json:"events_received"`
	EventsSent       int64     `json:"events_sent"`
	EventsDropped    int64     `json:"events_dropped"`
	Broadcasts       int64     `json:"broadcasts"`
	ConnectedClients int32     `json:"connected_clients"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// Snapshot returns the current counter values
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsReceived:   m.EventsReceived.Load(),
		EventsSent:       m.EventsSent.Load(),
		EventsDropped:    m.EventsDropped.Load(),
		Broadcasts:       m.Broadcasts.Load(),
		ConnectedClients: m.ConnectedClients.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).Round(time.Second).String(),
	}
}
