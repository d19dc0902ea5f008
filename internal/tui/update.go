package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/paso/internal/notifications"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.err != nil {
			m.notify(notifications.Error, msg.err.Error())
			return m, nil
		}
		m.items = msg.items
		m.refreshColumns()
		m.pullNotification()
		return m, nil

	case boardEventMsg:
		if !msg.ok {
			m.updates = nil
			m.notify(notifications.Warning, "Live updates stopped")
			return m, nil
		}
		return m, tea.Batch(m.mount(), waitForEvent(m.updates))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == NewItemMode {
			return m.handleNewItemMode(msg)
		}
		return m.handleNormalMode(msg)
	}

	return m, nil
}
