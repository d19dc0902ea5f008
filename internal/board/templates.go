// Package board implements the kanban board engine: column derivation per view
// dimension, item classification, config persistence and the board mutation surface.
package board

import "github.com/thenoetrevino/paso/internal/models"

// DefaultPalette is cycled through when generating columns from item data
var DefaultPalette = []string{
	"#7D56F4",
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#EC4899",
	"#14B8A6",
	"#8B5CF6",
}

// DefaultStatusColumns returns the fixed status column template
func DefaultStatusColumns() []models.KanbanColumn {
	return []models.KanbanColumn{
		{ID: models.StatusOpen, DisplayName: "Open", StatusValue: models.StatusOpen, Order: 1, Color: "#3B82F6"},
		{ID: models.StatusInProgress, DisplayName: "In Progress", StatusValue: models.StatusInProgress, Order: 2, Color: "#F59E0B"},
		{ID: models.StatusReady, DisplayName: "Ready", StatusValue: models.StatusReady, Order: 3, Color: "#10B981"},
		{ID: models.StatusBlocked, DisplayName: "Blocked", StatusValue: models.StatusBlocked, Order: 4, Color: "#EF4444"},
		{ID: models.StatusCompleted, DisplayName: "Completed", StatusValue: models.StatusCompleted, Order: 5, Color: "#22C55E"},
		{ID: models.StatusDeferred, DisplayName: "Deferred", StatusValue: models.StatusDeferred, Order: 6, Color: "#9CA3AF"},
	}
}

// SprintColumns returns the fixed sprint column template.
// Items land in a sprint column when their release id equals the column id.
func SprintColumns() []models.KanbanColumn {
	return []models.KanbanColumn{
		{ID: models.PrefixSprint + models.SentinelBacklog, DisplayName: "Backlog", StatusValue: models.SentinelBacklog, Order: 1, Color: "#9CA3AF"},
		{ID: models.PrefixSprint + "current", DisplayName: "Current Sprint", StatusValue: "current", Order: 2, Color: "#3B82F6"},
		{ID: models.PrefixSprint + "next", DisplayName: "Next Sprint", StatusValue: "next", Order: 3, Color: "#8B5CF6"},
		{ID: models.PrefixSprint + "future", DisplayName: "Future", StatusValue: "future", Order: 4, Color: "#6B7280"},
	}
}

// PriorityColumns returns the canonical priority column template, ending with the "none" sentinel
func PriorityColumns() []models.KanbanColumn {
	colors := map[string]string{
		models.PriorityCritical: "#DC2626",
		models.PriorityHigh:     "#F97316",
		models.PriorityMedium:   "#EAB308",
		models.PriorityLow:      "#22C55E",
	}
	names := map[string]string{
		models.PriorityCritical: "Critical",
		models.PriorityHigh:     "High",
		models.PriorityMedium:   "Medium",
		models.PriorityLow:      "Low",
	}

	cols := make([]models.KanbanColumn, 0, len(models.KnownPriorities)+1)
	for i, p := range models.KnownPriorities {
		cols = append(cols, models.KanbanColumn{
			ID:          models.PrefixPriority + p,
			DisplayName: names[p],
			StatusValue: p,
			Order:       i + 1,
			Color:       colors[p],
		})
	}
	cols = append(cols, models.KanbanColumn{
		ID:          models.PrefixPriority + models.SentinelNone,
		DisplayName: "None",
		StatusValue: models.SentinelNone,
		Order:       len(cols) + 1,
		Color:       models.NeutralColor,
	})
	return cols
}

// DefaultConfig returns the status-dimension board every new board starts from.
// ViewType is set to view so a restore can force the active dimension.
func DefaultConfig(view models.ViewDimension) models.KanbanBoardConfig {
	return models.KanbanBoardConfig{
		ViewType: view,
		Columns:  DefaultStatusColumns(),
	}
}

// hasStatusColumns reports whether cfg contains at least one column recognizable as a status column
func hasStatusColumns(cfg models.KanbanBoardConfig) bool {
	for _, col := range cfg.Columns {
		if col.ID == col.StatusValue && models.IsKnownStatus(col.StatusValue) {
			return true
		}
	}
	return false
}
