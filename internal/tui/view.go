package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/notifications"
	"github.com/thenoetrevino/paso/internal/render"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(render.SelectedBorder)).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.Subtle)).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.Subtle))
)

// View renders the tabs, the board and the prompt or help line
func (m Model) View() string {
	sections := []string{m.renderTabs(), render.RenderBoard(m.columns, m.selectedColumn, m.selectedItem)}

	if m.mode == NewItemMode {
		sections = append(sections, "New item: "+m.input.View())
	}
	if m.notification != nil {
		sections = append(sections, notifications.Render(*m.notification))
	}
	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	dims := models.AllViewDimensions()
	tabs := make([]string, len(dims))
	for i, d := range dims {
		if d == m.view {
			tabs[i] = activeTabStyle.Render(d.String())
		} else {
			tabs[i] = tabStyle.Render(d.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderHelp() string {
	if m.mode == NewItemMode {
		return helpStyle.Render("enter create • esc cancel")
	}
	km := m.keys
	parts := []string{
		keyName(km.PrevColumn) + "/" + keyName(km.NextColumn) + " column",
		keyName(km.ToggleColumn) + " collapse",
		keyName(km.AddItem) + " new item",
		keyName(km.AddBucket) + " bucket",
		keyName(km.RemoveBucket) + " remove bucket",
		keyName(km.MoveColumnLeft) + "/" + keyName(km.MoveColumnRight) + " move",
		keyName(km.NextView) + " view",
		keyName(km.Quit) + " quit",
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
