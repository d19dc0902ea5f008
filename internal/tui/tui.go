package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/paso/internal/app"
	"github.com/thenoetrevino/paso/internal/events"
)

// Run starts the board viewer and blocks until the user quits.
// updates may be nil when no daemon is running.
func Run(ctx context.Context, a *app.App, updates <-chan events.Event) error {
	m := InitialModel(ctx, a).WithUpdates(updates)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
