// Package tui is the interactive board viewer.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/paso/internal/app"
	"github.com/thenoetrevino/paso/internal/board"
	"github.com/thenoetrevino/paso/internal/config"
	"github.com/thenoetrevino/paso/internal/database"
	"github.com/thenoetrevino/paso/internal/events"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/notifications"
)

// Mode is the input mode of the viewer
type Mode int

const (
	NormalMode Mode = iota
	NewItemMode
)

// Model represents the application state for the TUI
type Model struct {
	ctx  context.Context
	app  *app.App
	keys config.KeyMappings

	view    models.ViewDimension
	items   []models.BacklogItem
	columns []board.ColumnView

	selectedColumn int
	selectedItem   int

	mode    Mode
	input   textinput.Model
	pending database.CreateItemRequest

	notification *notifications.Notification
	width        int
	height       int

	// updates carries change events from other paso processes, nil without a daemon
	updates <-chan events.Event
}

// itemsLoadedMsg carries a fresh item list after mounting or reloading
type itemsLoadedMsg struct {
	items []models.BacklogItem
	err   error
}

// InitialModel creates the TUI model for a, showing the last selected view
func InitialModel(ctx context.Context, a *app.App) Model {
	input := textinput.New()
	input.Placeholder = "Item title"
	input.CharLimit = 255

	return Model{
		ctx:   ctx,
		app:   a,
		keys:  a.Config().KeyMappings,
		view:  a.CurrentView(ctx),
		input: input,
	}
}

// boardEventMsg reports a change made by another paso process
type boardEventMsg struct {
	event events.Event
	ok    bool
}

// WithUpdates makes the model remount the board whenever an event arrives on ch
func (m Model) WithUpdates(ch <-chan events.Event) Model {
	m.updates = ch
	return m
}

// Init mounts the board and starts waiting for live updates
func (m Model) Init() tea.Cmd {
	if m.updates == nil {
		return m.mount()
	}
	return tea.Batch(m.mount(), waitForEvent(m.updates))
}

// mount restores the persisted board and reloads the items
func (m Model) mount() tea.Cmd {
	ctx, a, view := m.ctx, m.app, m.view
	return func() tea.Msg {
		items, err := a.Mount(ctx, view)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func waitForEvent(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		return boardEventMsg{event: event, ok: ok}
	}
}

// refreshColumns re-partitions the items and keeps the selection in range
func (m *Model) refreshColumns() {
	m.columns = m.app.Board.View(m.items)
	m.selectedColumn = clamp(m.selectedColumn, 0, len(m.columns)-1)
	m.selectedItem = clamp(m.selectedItem, 0, len(m.currentItems())-1)
}

// currentColumn returns the selected column, if any
func (m Model) currentColumn() (board.ColumnView, bool) {
	if m.selectedColumn < 0 || m.selectedColumn >= len(m.columns) {
		return board.ColumnView{}, false
	}
	return m.columns[m.selectedColumn], true
}

func (m Model) currentItems() []models.BacklogItem {
	col, ok := m.currentColumn()
	if !ok || col.Collapsed {
		return nil
	}
	return col.Items
}

// pullNotification shows the newest queued board notification
func (m *Model) pullNotification() {
	notes := m.app.Notifications.Drain()
	if len(notes) > 0 {
		n := notes[len(notes)-1]
		m.notification = &n
	}
}

func (m *Model) notify(severity notifications.Severity, message string) {
	m.notification = &notifications.Notification{Severity: severity, Message: message}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
