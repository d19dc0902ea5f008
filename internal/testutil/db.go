package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/thenoetrevino/paso/internal/app"
	"github.com/thenoetrevino/paso/internal/config"
	"github.com/thenoetrevino/paso/internal/database"
	"github.com/thenoetrevino/paso/internal/logging"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestApp creates an App over a fresh in-memory database with default config
func SetupTestApp(t *testing.T, opts ...app.Option) (*sql.DB, *app.App) {
	t.Helper()
	db := SetupTestDB(t)
	opts = append([]app.Option{app.WithLogger(logging.Discard())}, opts...)
	return db, app.New(db, config.Default(), opts...)
}

// CreateTestItem inserts an item and fails the test on error
func CreateTestItem(t *testing.T, a *app.App, req database.CreateItemRequest) string {
	t.Helper()
	item, err := a.Items.CreateItem(context.Background(), req)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return item.ID
}
