package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/paso/internal/models"
)

var priorityColors = map[string]string{
	models.PriorityCritical: "#DC2626",
	models.PriorityHigh:     "#F97316",
	models.PriorityMedium:   "#EAB308",
	models.PriorityLow:      "#22C55E",
}

// RenderItem renders a single backlog item as a card
//
//	{Title}
//	assignee │ priority
//	[label1] [label2]
func RenderItem(item models.BacklogItem, selected bool) string {
	title := item.Title
	if len(title) > itemTitleMaxLength {
		title = title[:itemTitleMaxLength] + SubtleStyle.Render("...")
	}
	if item.Status == models.StatusBlocked {
		title += BoldColoredText(" !", BlockedFg)
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(title),
		renderMetadata(item),
		renderLabels(item.Labels),
	}

	style := ItemStyle
	if selected {
		style = style.Background(lipgloss.Color(SelectedBg))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderMetadata renders assignee and priority on the same line, separated by │
func renderMetadata(item models.BacklogItem) string {
	assignee := SubtleStyle.Render("unassigned")
	if item.Assignee != "" {
		assignee = ColoredText("@"+item.Assignee, Normal)
	}

	priority := SubtleStyle.Render("no priority")
	if item.Priority != "" {
		color, ok := priorityColors[item.Priority]
		if !ok {
			color = Normal
		}
		priority = ColoredText(item.Priority, color)
	}

	return assignee + ColoredText(" │ ", Subtle) + priority
}

func renderLabels(labels []string) string {
	if len(labels) == 0 {
		return SubtleStyle.Render("no labels")
	}
	chips := make([]string, len(labels))
	for i, l := range labels {
		chips[i] = BoldColoredText("["+l+"]", SelectedBorder)
	}
	return strings.Join(chips, " ")
}
