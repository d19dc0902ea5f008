package board

import (
	"github.com/thenoetrevino/paso/internal/models"
)

// ColumnGenerator builds the column for one distinct dimension value.
// index is the position of the value in the derived set.
type ColumnGenerator func(value string, index int) models.KanbanColumn

// Deriver computes the column set for a view dimension.
// A nil generator leaves the columns of that dimension untouched.
type Deriver struct {
	AssigneeColumn ColumnGenerator
	LabelColumn    ColumnGenerator
	ReleaseColumn  ColumnGenerator
}

// NewDeriver returns a Deriver with the default generators coloring columns from palette.
// An empty palette falls back to DefaultPalette.
func NewDeriver(palette []string) *Deriver {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Deriver{
		AssigneeColumn: prefixedGenerator(models.PrefixAssignee, models.SentinelUnassigned, "Unassigned", palette),
		LabelColumn:    prefixedGenerator(models.PrefixLabel, models.SentinelNoLabel, models.SentinelNoLabel, palette),
		ReleaseColumn:  prefixedGenerator(models.PrefixRelease, models.SentinelUnassigned, "Unassigned", palette),
	}
}

func prefixedGenerator(prefix, sentinel, sentinelName string, palette []string) ColumnGenerator {
	return func(value string, index int) models.KanbanColumn {
		col := models.KanbanColumn{
			ID:          prefix + value,
			DisplayName: value,
			StatusValue: value,
			Order:       index + 1,
			Color:       palette[index%len(palette)],
		}
		if value == sentinel {
			col.DisplayName = sentinelName
			col.Color = models.NeutralColor
		}
		return col
	}
}

// DeriveColumns returns the config appropriate for view given the current items.
// The returned config always carries ViewType = view; existing is never mutated.
//
//   - status:   columns are left as configured
//   - sprint:   the sprint template is installed unless a sprint- column exists
//   - assignee: one column per distinct assignee plus "unassigned"
//   - priority: always the fixed priority template
//   - label:    one column per distinct label plus "No Label"
//   - release:  one column per distinct release id plus "unassigned"
//
// Distinct values keep the order in which they are first encountered.
func (d *Deriver) DeriveColumns(view models.ViewDimension, items []models.BacklogItem, existing models.KanbanBoardConfig) models.KanbanBoardConfig {
	cfg := existing.Clone()
	cfg.ViewType = view

	switch view {
	case models.ViewStatus:
		// status columns are admin-configured, never derived from items

	case models.ViewSprint:
		if !cfg.HasColumnPrefix(models.PrefixSprint) {
			cfg.Columns = SprintColumns()
		}

	case models.ViewAssignee:
		if d.AssigneeColumn == nil {
			break
		}
		values := distinct(items, func(it models.BacklogItem) []string { return single(it.Assignee) })
		values = appendIfMissing(values, models.SentinelUnassigned)
		cfg.Columns = generate(values, d.AssigneeColumn)

	case models.ViewPriority:
		cfg.Columns = PriorityColumns()

	case models.ViewLabel:
		if d.LabelColumn == nil {
			break
		}
		values := distinct(items, func(it models.BacklogItem) []string { return it.Labels })
		values = appendIfMissing(values, models.SentinelNoLabel)
		cfg.Columns = generate(values, d.LabelColumn)

	case models.ViewRelease:
		if d.ReleaseColumn == nil {
			break
		}
		values := distinct(items, func(it models.BacklogItem) []string { return single(it.ReleaseID) })
		values = appendIfMissing(values, models.SentinelUnassigned)
		cfg.Columns = generate(values, d.ReleaseColumn)
	}

	return cfg
}

// DeriveColumns runs the default deriver
func DeriveColumns(view models.ViewDimension, items []models.BacklogItem, existing models.KanbanBoardConfig) models.KanbanBoardConfig {
	return NewDeriver(nil).DeriveColumns(view, items, existing)
}

func single(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// distinct collects non-empty values in first-seen order
func distinct(items []models.BacklogItem, values func(models.BacklogItem) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range items {
		for _, v := range values(it) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func appendIfMissing(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}

func generate(values []string, gen ColumnGenerator) []models.KanbanColumn {
	cols := make([]models.KanbanColumn, len(values))
	for i, v := range values {
		cols[i] = gen(v, i)
	}
	return cols
}
