package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/notifications"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notification = nil

	km := m.keys
	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.PrevColumn, "left":
		m.selectedColumn = clamp(m.selectedColumn-1, 0, len(m.columns)-1)
		m.selectedItem = 0
	case km.NextColumn, "right":
		m.selectedColumn = clamp(m.selectedColumn+1, 0, len(m.columns)-1)
		m.selectedItem = 0
	case km.PrevItem, "up":
		m.selectedItem = clamp(m.selectedItem-1, 0, len(m.currentItems())-1)
	case km.NextItem, "down":
		m.selectedItem = clamp(m.selectedItem+1, 0, len(m.currentItems())-1)
	case km.ToggleColumn:
		return m.handleToggleColumn()
	case km.AddBucket:
		return m.handleAddBucket()
	case km.RemoveBucket:
		return m.handleRemoveBucket()
	case km.MoveColumnLeft:
		return m.handleMoveColumn(-1)
	case km.MoveColumnRight:
		return m.handleMoveColumn(1)
	case km.NextView:
		return m.handleNextView()
	case km.AddItem:
		return m.handleAddItem()
	}
	return m, nil
}

func (m Model) handleToggleColumn() (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	if !ok {
		return m, nil
	}
	m.app.Board.ToggleColumn(m.ctx, col.Column.ID)
	m.refreshColumns()
	return m, nil
}

func (m Model) handleAddBucket() (tea.Model, tea.Cmd) {
	m.app.Board.AddBucket(m.ctx)
	m.refreshColumns()
	m.selectedColumn = len(m.columns) - 1
	m.selectedItem = 0
	m.pullNotification()
	return m, nil
}

func (m Model) handleRemoveBucket() (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	if !ok {
		return m, nil
	}
	if err := m.app.Board.RemoveBucket(m.ctx, col.Column.ID); err != nil {
		if errors.Is(err, models.ErrNotABucket) {
			m.notify(notifications.Warning, "Only bucket columns can be removed")
			return m, nil
		}
		m.notify(notifications.Error, err.Error())
		return m, nil
	}
	m.refreshColumns()
	m.pullNotification()
	return m, nil
}

func (m Model) handleMoveColumn(delta int) (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	if !ok {
		return m, nil
	}
	if err := m.app.Board.MoveColumn(m.ctx, col.Column.ID, delta); err != nil {
		// already at the edge
		return m, nil
	}
	m.refreshColumns()
	m.selectedColumn = clamp(m.selectedColumn+delta, 0, len(m.columns)-1)
	return m, nil
}

func (m Model) handleNextView() (tea.Model, tea.Cmd) {
	next := m.view.Next()
	items, err := m.app.SelectView(m.ctx, next)
	if err != nil {
		m.notify(notifications.Error, err.Error())
		return m, nil
	}
	m.view = next
	m.items = items
	m.selectedColumn = 0
	m.selectedItem = 0
	m.refreshColumns()
	m.app.Notifications.Drain()
	return m, nil
}
