package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Backlog item statuses. Buckets add their own "bucket-N" values on top.
const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusReady      = "ready"
	StatusBlocked    = "blocked"
	StatusCompleted  = "completed"
	StatusDeferred   = "deferred"
)

// KnownStatuses lists the fixed status enumeration in board order
var KnownStatuses = []string{
	StatusOpen,
	StatusInProgress,
	StatusReady,
	StatusBlocked,
	StatusCompleted,
	StatusDeferred,
}

// IsKnownStatus reports whether s is part of the fixed status enumeration
func IsKnownStatus(s string) bool {
	for _, known := range KnownStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// ============================================================================
// PRIORITY CONSTANTS
// ============================================================================

// Priority values, highest first
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// KnownPriorities lists the canonical priority order used by the priority view
var KnownPriorities = []string{
	PriorityCritical,
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
}

// ============================================================================
// SENTINEL VALUES
// ============================================================================

// Sentinels stand for an absent value on the active dimension
const (
	SentinelUnassigned = "unassigned"
	SentinelNone       = "none"
	SentinelNoLabel    = "No Label"
	SentinelBacklog    = "backlog"
)

// ============================================================================
// COLUMN ID PREFIXES
// ============================================================================

const (
	PrefixSprint   = "sprint-"
	PrefixAssignee = "assignee-"
	PrefixPriority = "priority-"
	PrefixLabel    = "label-"
	PrefixRelease  = "release-"
	PrefixBucket   = "bucket-"
)

// ============================================================================
// COLORS
// ============================================================================

// NeutralColor is the color token given to freshly created buckets
const NeutralColor = "#6B7280"
