package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/paso/internal/board"
)

// ColumnHeader returns "{Name} ({count})"
func ColumnHeader(view board.ColumnView) string {
	name := view.Column.DisplayName
	if name == "" {
		name = view.Column.ID
	}
	return fmt.Sprintf("%s (%d)", name, view.Count())
}

// RenderColumn renders a column with its header and item cards.
// Collapsed columns render as a narrow header only.
//
// Layout:
//
//	{Column Name} ({count})
//	{Item 1}
//	{Item 2}
//	...
func RenderColumn(view board.ColumnView, selected bool, selectedItem int) string {
	style := ColumnStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(SelectedBorder))
	}

	color := view.Column.Color
	if color == "" {
		color = Normal
	}

	if view.Collapsed {
		header := BoldColoredText(fmt.Sprintf("▸ %d", view.Count()), color)
		return style.Width(CollapsedWidth).Render(header + "\n" + SubtleStyle.Render(abbreviate(view)))
	}

	content := BoldColoredText(ColumnHeader(view), color) + "\n"
	if len(view.Items) == 0 {
		content += SubtleStyle.Render("No items")
	}
	for i, item := range view.Items {
		content += RenderItem(item, selected && i == selectedItem)
		if i < len(view.Items)-1 {
			content += "\n"
		}
	}
	return style.Width(ColumnWidth + 2).Render(content)
}

// RenderBoard lays the columns out left to right, highlighting the selected one
func RenderBoard(views []board.ColumnView, selectedColumn, selectedItem int) string {
	if len(views) == 0 {
		return SubtleStyle.Render("No columns")
	}
	rendered := make([]string, len(views))
	for i, v := range views {
		rendered[i] = RenderColumn(v, i == selectedColumn, selectedItem)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func abbreviate(view board.ColumnView) string {
	name := []rune(view.Column.DisplayName)
	if len(name) > CollapsedWidth-2 {
		name = name[:CollapsedWidth-2]
	}
	return string(name)
}
