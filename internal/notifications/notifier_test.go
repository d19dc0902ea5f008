package notifications

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_DrainEmptiesQueue(t *testing.T) {
	t.Parallel()

	var q Queue
	q.Notify(Notification{Severity: Info, Message: "one"})
	q.Notify(Notification{Severity: Warning, Message: "two"})

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Message)
	assert.Equal(t, Warning, got[1].Severity)
	assert.Empty(t, q.Drain())
}

func TestLogNotifier_UsesSeverityLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	LogNotifier{Logger: logger}.Notify(Notification{Severity: Error, Message: "write failed"})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "write failed")
}

func TestMulti_SkipsNil(t *testing.T) {
	t.Parallel()

	var a, b Queue
	Multi(&a, nil, &b).Notify(Notification{Message: "hi"})

	assert.Len(t, a.Drain(), 1)
	assert.Len(t, b.Drain(), 1)
}

func TestRender_ContainsTitleAndMessage(t *testing.T) {
	t.Parallel()

	out := Render(Notification{Severity: Warning, Message: "column collapsed"})
	assert.True(t, strings.Contains(out, "Warning"))
	assert.True(t, strings.Contains(out, "column collapsed"))
}

func TestSeverity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
