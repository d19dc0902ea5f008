package board

import (
	"sort"
	"strings"

	"github.com/thenoetrevino/paso/internal/models"
)

// Classify returns the items that belong in column under the given view.
// It is a stable filter: matching items keep their input order.
// Items that match no column are simply absent; an unknown view yields an empty slice.
//
// For the sprint view the release id is compared against columnID, not the
// column's StatusValue, except for the backlog column which collects items
// without a release.
func Classify(column models.KanbanColumn, columnID string, items []models.BacklogItem, view models.ViewDimension) []models.BacklogItem {
	match := matcher(column, columnID, view)
	out := make([]models.BacklogItem, 0)
	if match == nil {
		return out
	}
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

func matcher(column models.KanbanColumn, columnID string, view models.ViewDimension) func(models.BacklogItem) bool {
	switch view {
	case models.ViewStatus:
		return func(it models.BacklogItem) bool {
			return it.Status == column.StatusValue
		}

	case models.ViewSprint:
		if column.StatusValue == models.SentinelBacklog {
			return func(it models.BacklogItem) bool { return it.ReleaseID == "" }
		}
		return func(it models.BacklogItem) bool { return it.ReleaseID == columnID }

	case models.ViewAssignee:
		target := strings.TrimPrefix(columnID, models.PrefixAssignee)
		return valueMatcher(target, models.SentinelUnassigned, func(it models.BacklogItem) string { return it.Assignee })

	case models.ViewPriority:
		target := strings.TrimPrefix(columnID, models.PrefixPriority)
		return valueMatcher(target, models.SentinelNone, func(it models.BacklogItem) string { return it.Priority })

	case models.ViewLabel:
		target := strings.TrimPrefix(columnID, models.PrefixLabel)
		if target == models.SentinelNoLabel {
			// a literal "No Label" label shares the sentinel column
			return func(it models.BacklogItem) bool { return len(it.Labels) == 0 || it.HasLabel(target) }
		}
		return func(it models.BacklogItem) bool { return it.HasLabel(target) }

	case models.ViewRelease:
		target := strings.TrimPrefix(columnID, models.PrefixRelease)
		return valueMatcher(target, models.SentinelUnassigned, func(it models.BacklogItem) string { return it.ReleaseID })
	}
	return nil
}

// valueMatcher matches items whose field equals target, or whose field is empty when target is the sentinel
func valueMatcher(target, sentinel string, field func(models.BacklogItem) string) func(models.BacklogItem) bool {
	if target == sentinel {
		return func(it models.BacklogItem) bool { return field(it) == "" }
	}
	return func(it models.BacklogItem) bool { return field(it) == target }
}

// ColumnView is a column together with the items it displays
type ColumnView struct {
	Column    models.KanbanColumn  `json:"column"`
	Items     []models.BacklogItem `json:"items"`
	Collapsed bool                 `json:"collapsed"`
}

// Count returns the number of items in the column, collapsed or not
func (v ColumnView) Count() int {
	return len(v.Items)
}

// SortedColumns returns a copy of the columns ordered by Order, ties kept in slice order
func SortedColumns(cfg models.KanbanBoardConfig) []models.KanbanColumn {
	cols := make([]models.KanbanColumn, len(cfg.Columns))
	copy(cols, cfg.Columns)
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].Order < cols[j].Order })
	return cols
}

// Partition classifies items into every column of cfg, left to right
func Partition(cfg models.KanbanBoardConfig, items []models.BacklogItem, collapsed map[string]bool) []ColumnView {
	cols := SortedColumns(cfg)
	views := make([]ColumnView, len(cols))
	for i, col := range cols {
		views[i] = ColumnView{
			Column:    col,
			Items:     Classify(col, col.ID, items, cfg.ViewType),
			Collapsed: collapsed[col.ID],
		}
	}
	return views
}

// Unplaced returns the items that no column of cfg displays
func Unplaced(cfg models.KanbanBoardConfig, items []models.BacklogItem) []models.BacklogItem {
	placed := make(map[string]bool, len(items))
	for _, view := range Partition(cfg, items, nil) {
		for _, it := range view.Items {
			placed[it.ID] = true
		}
	}
	out := make([]models.BacklogItem, 0)
	for _, it := range items {
		if !placed[it.ID] {
			out = append(out, it)
		}
	}
	return out
}
