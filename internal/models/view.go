package models

import (
	"fmt"
	"strings"
)

// ViewDimension is the item attribute used to group backlog items into columns
type ViewDimension string

const (
	ViewStatus   ViewDimension = "status"
	ViewSprint   ViewDimension = "sprint"
	ViewAssignee ViewDimension = "assignee"
	ViewPriority ViewDimension = "priority"
	ViewLabel    ViewDimension = "label"
	ViewRelease  ViewDimension = "release"
)

// AllViewDimensions returns every supported dimension in menu order
func AllViewDimensions() []ViewDimension {
	return []ViewDimension{
		ViewStatus,
		ViewSprint,
		ViewAssignee,
		ViewPriority,
		ViewLabel,
		ViewRelease,
	}
}

// Valid reports whether v is one of the supported dimensions
func (v ViewDimension) Valid() bool {
	for _, d := range AllViewDimensions() {
		if d == v {
			return true
		}
	}
	return false
}

func (v ViewDimension) String() string {
	return string(v)
}

// Next returns the dimension after v, wrapping around. Unknown values start over at status.
func (v ViewDimension) Next() ViewDimension {
	all := AllViewDimensions()
	for i, d := range all {
		if d == v {
			return all[(i+1)%len(all)]
		}
	}
	return ViewStatus
}

// ParseViewDimension maps user input to a ViewDimension
func ParseViewDimension(s string) (ViewDimension, error) {
	v := ViewDimension(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: '%s' (must be: status, sprint, assignee, priority, label, release)", ErrUnknownViewDimension, s)
	}
	return v, nil
}
