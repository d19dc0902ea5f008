package models

import "strings"

// KanbanColumn is a single board column.
// StatusValue is the key items are matched against; it may differ from ID.
type KanbanColumn struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	StatusValue string `json:"statusValue"`
	Order       int    `json:"order"`
	Color       string `json:"color"`
}

// IsBucket reports whether the column is a user-created ad-hoc column
func (c KanbanColumn) IsBucket() bool {
	return strings.HasPrefix(c.ID, PrefixBucket)
}

// KanbanBoardConfig is the persisted layout of the board
type KanbanBoardConfig struct {
	ViewType         ViewDimension  `json:"viewType"`
	Columns          []KanbanColumn `json:"columns"`
	DefaultCollapsed []string       `json:"defaultCollapsed,omitempty"`
}

// Clone returns a deep copy so callers can mutate without aliasing
func (c KanbanBoardConfig) Clone() KanbanBoardConfig {
	out := KanbanBoardConfig{ViewType: c.ViewType}
	if c.Columns != nil {
		out.Columns = make([]KanbanColumn, len(c.Columns))
		copy(out.Columns, c.Columns)
	}
	if c.DefaultCollapsed != nil {
		out.DefaultCollapsed = make([]string, len(c.DefaultCollapsed))
		copy(out.DefaultCollapsed, c.DefaultCollapsed)
	}
	return out
}

// HasColumn reports whether a column with the given id exists
func (c KanbanBoardConfig) HasColumn(id string) bool {
	return c.ColumnIndex(id) >= 0
}

// ColumnIndex returns the slice index of the column with id, or -1
func (c KanbanBoardConfig) ColumnIndex(id string) int {
	for i, col := range c.Columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// HasColumnPrefix reports whether any column id starts with prefix
func (c KanbanBoardConfig) HasColumnPrefix(prefix string) bool {
	for _, col := range c.Columns {
		if strings.HasPrefix(col.ID, prefix) {
			return true
		}
	}
	return false
}
