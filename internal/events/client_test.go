package events_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso/internal/daemon"
	"github.com/thenoetrevino/paso/internal/events"
	"github.com/thenoetrevino/paso/internal/logging"
)

func setupTestDaemon(t *testing.T) string {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "paso.sock")

	server, err := daemon.NewServer(socketPath, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Shutdown() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = server.Start(ctx) }()

	return socketPath
}

func setupTestClient(t *testing.T, socketPath string) *events.Client {
	t.Helper()
	client := events.NewClient(socketPath)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx))
	return client
}

func waitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed")
		return event
	case <-time.After(timeout):
		t.Fatal("Timeout waiting for event")
		return events.Event{}
	}
}

func TestClient_PublishReachesListener(t *testing.T) {
	t.Setenv("PASO_EVENT_DEBOUNCE_MS", "10")
	socketPath := setupTestDaemon(t)

	listener := setupTestClient(t, socketPath)
	publisher := setupTestClient(t, socketPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := listener.Listen(ctx)
	require.NoError(t, err)

	// The daemon registers connections asynchronously; keep publishing until one lands
	var got events.Event
	require.Eventually(t, func() bool {
		_ = publisher.SendEvent(events.Event{Type: events.EventBoardChanged, View: "priority"})
		select {
		case got = <-ch:
			return true
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, events.EventBoardChanged, got.Type)
	assert.Equal(t, "priority", got.View)
	assert.Positive(t, got.SequenceID)
	assert.False(t, got.Timestamp.IsZero())
}

func TestClient_CloseFlushesPending(t *testing.T) {
	// A long window means only Close can deliver the event
	t.Setenv("PASO_EVENT_DEBOUNCE_MS", "60000")
	socketPath := setupTestDaemon(t)

	listener := setupTestClient(t, socketPath)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := listener.Listen(ctx)
	require.NoError(t, err)

	publisher := events.NewClient(socketPath)
	require.NoError(t, publisher.Connect(context.Background()))

	// Give the daemon a moment to register both connections
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, publisher.SendEvent(events.Event{Type: events.EventItemsChanged, View: "status"}))
	require.NoError(t, publisher.Close())

	got := waitForEvent(t, ch, 2*time.Second)
	assert.Equal(t, events.EventItemsChanged, got.Type)
}

func TestClient_CloseWithoutConnect(t *testing.T) {
	client := events.NewClient(filepath.Join(t.TempDir(), "none.sock"))

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
	assert.Error(t, client.SendEvent(events.Event{Type: events.EventBoardChanged}))
}

func TestClient_ConnectMissingSocket(t *testing.T) {
	client := events.NewClient(filepath.Join(t.TempDir(), "none.sock"))
	defer func() { _ = client.Close() }()

	err := client.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, events.ErrSocketNotFound, events.ClassifyDaemonError(err).Code)

	_, err = client.Listen(context.Background())
	assert.Error(t, err)
}

func TestClient_ListenClosesOnCancel(t *testing.T) {
	socketPath := setupTestDaemon(t)
	client := setupTestClient(t, socketPath)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := client.Listen(ctx)
	require.NoError(t, err)

	cancel()
	require.NoError(t, client.Close())

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("listen channel not closed")
	}
}
