package models

import "time"

// BacklogItem is a work item scheduled on the board.
// Empty string fields mean the value is absent (unassigned, no priority, in backlog).
type BacklogItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	ReleaseID string    `json:"releaseId,omitempty"`
	Assignee  string    `json:"assignee,omitempty"`
	Priority  string    `json:"priority,omitempty"`
	Labels    []string  `json:"labels,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasLabel reports whether label is attached to the item
func (i BacklogItem) HasLabel(label string) bool {
	for _, l := range i.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// GetID satisfies the quiet-mode output contract of the CLI formatter
func (i BacklogItem) GetID() string {
	return i.ID
}
