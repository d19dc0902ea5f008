package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/paso/internal/database"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/notifications"
)

// handleAddItem opens the new-item prompt preset for the selected column
func (m Model) handleAddItem() (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	m.pending = database.CreateItemRequest{}
	if !ok {
		m.app.Board.CreateItem()
	} else {
		m.pending = prefill(m.view, col.Column)
		m.app.Board.AddItem(m.pending.Status)
	}

	if !m.app.Board.Dialog().NewItemOpen {
		return m, nil
	}
	m.mode = NewItemMode
	m.input.Reset()
	return m, m.input.Focus()
}

func (m Model) handleNewItemMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.app.Board.NewItemCancel()
		m.mode = NormalMode
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		req := m.pending
		req.Title = strings.TrimSpace(m.input.Value())
		if req.Title == "" {
			m.notify(notifications.Warning, "Title cannot be empty")
			return m, nil
		}

		item, err := m.app.SubmitItem(m.ctx, m.view, req)
		m.mode = NormalMode
		m.input.Blur()
		if err != nil {
			m.notify(notifications.Error, err.Error())
			return m, nil
		}
		m.items = append(m.items, item)
		m.refreshColumns()
		m.notify(notifications.Info, "Created "+item.Title)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// prefill returns the attributes a new item needs to land in col
func prefill(view models.ViewDimension, col models.KanbanColumn) database.CreateItemRequest {
	var req database.CreateItemRequest
	switch view {
	case models.ViewStatus:
		req.Status = col.StatusValue
	case models.ViewAssignee:
		if v := strings.TrimPrefix(col.ID, models.PrefixAssignee); v != models.SentinelUnassigned {
			req.Assignee = v
		}
	case models.ViewPriority:
		if v := strings.TrimPrefix(col.ID, models.PrefixPriority); v != models.SentinelNone {
			req.Priority = v
		}
	case models.ViewLabel:
		if v := strings.TrimPrefix(col.ID, models.PrefixLabel); v != models.SentinelNoLabel {
			req.Labels = []string{v}
		}
	case models.ViewRelease:
		if v := strings.TrimPrefix(col.ID, models.PrefixRelease); v != models.SentinelUnassigned {
			req.ReleaseID = v
		}
	case models.ViewSprint:
		if col.StatusValue != models.SentinelBacklog {
			req.ReleaseID = col.ID
		}
	}
	if col.IsBucket() {
		req.Status = col.StatusValue
	}
	return req
}
