package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/thenoetrevino/paso/internal/app"
	"github.com/thenoetrevino/paso/internal/config"
	"github.com/thenoetrevino/paso/internal/database"
	"github.com/thenoetrevino/paso/internal/events"
	"github.com/thenoetrevino/paso/internal/logging"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	db        *sql.DB
	logCloser io.Closer
	events    *events.Client // nil when the daemon is not running
}

// WithApp returns a context carrying an already built App.
// Commands run under it use that App instead of opening the database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI around the App injected with WithApp, or a fresh one from NewCLI
func GetCLIFromContext(ctx context.Context, opts ...app.Option) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx, opts...)
}

// NewCLI loads the config, starts logging and opens the database
func NewCLI(ctx context.Context, opts ...app.Option) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Logging is best effort, the CLI keeps working without a log file
	logCloser, err := logging.Init(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		log.Printf("Warning: failed to initialize logging: %v", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		if logCloser != nil {
			_ = logCloser.Close()
		}
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if logging.Logger != nil {
		opts = append([]app.Option{app.WithLogger(logging.Logger)}, opts...)
	}

	eventClient := ConnectDaemon(ctx, events.DefaultSocketPath())
	if eventClient != nil {
		opts = append(opts, app.WithPublisher(eventClient))
	}

	return &CLI{
		App:       app.New(db, cfg, opts...),
		db:        db,
		logCloser: logCloser,
		events:    eventClient,
	}, nil
}

// ConnectDaemon connects to the event daemon for live updates.
// The daemon is optional: on failure the reason is logged and nil is returned.
func ConnectDaemon(ctx context.Context, socketPath string) *events.Client {
	dialCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	client := events.NewClient(socketPath)
	if err := client.Connect(dialCtx); err != nil {
		daemonErr := events.ClassifyDaemonError(err)
		slog.Debug("continuing without live updates", "message", daemonErr.Message, "hint", daemonErr.Hint)
		_ = client.Close()
		return nil
	}
	return client
}

// Events returns the daemon connection, or nil when there is none
func (c *CLI) Events() *events.Client {
	return c.events
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	// Flush queued change events before the process exits
	if c.events != nil {
		_ = c.events.Close()
	}
	if err := c.App.Close(); err != nil {
		return err
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return err
		}
	}
	if c.logCloser != nil {
		return c.logCloser.Close()
	}
	return nil
}
