package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/paso/internal/cli"
	"github.com/thenoetrevino/paso/internal/events"
	"github.com/thenoetrevino/paso/internal/tui"
)

// runTUI is swapped out in tests
var runTUI = tui.Run

// Launch opens the board viewer on the last selected view.
// When the event daemon is running, changes from other paso processes
// reload the board while it is open.
func Launch(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	var updates <-chan events.Event
	if client := cliInstance.Events(); client != nil {
		updates, err = client.Listen(ctx)
		if err != nil {
			slog.Warn("live updates unavailable", "error", err)
			updates = nil
		}
	} else {
		slog.Info("daemon not running, continuing without live updates")
	}

	if err := runTUI(ctx, cliInstance.App, updates); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
