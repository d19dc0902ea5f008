// Package render draws board columns and item cards with lipgloss.
// It is shared by the CLI's human output and the interactive board.
package render

import "github.com/charmbracelet/lipgloss"

const (
	// ColumnWidth is the content width of an expanded column
	ColumnWidth = 28
	// CollapsedWidth is the content width of a collapsed column
	CollapsedWidth = 6

	itemTitleMaxLength = ColumnWidth - 4
)

// Palette colors
const (
	Subtle         = "#6B7280"
	Normal         = "#E5E7EB"
	SelectedBorder = "#7D56F4"
	SelectedBg     = "#374151"
	BlockedFg      = "#DC2626"
)

var (
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Subtle)).
			Padding(0, 1, 1, 1)

	ItemStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(Subtle)).
			Width(ColumnWidth)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Subtle)).
			Italic(true)
)

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}
