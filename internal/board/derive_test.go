package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso/internal/models"
)

func columnIDs(cols []models.KanbanColumn) []string {
	ids := make([]string, len(cols))
	for i, c := range cols {
		ids[i] = c.ID
	}
	return ids
}

func sampleItems() []models.BacklogItem {
	return []models.BacklogItem{
		{ID: "BI-1", Status: models.StatusOpen, Assignee: "zoe", Priority: models.PriorityHigh, Labels: []string{"ui"}, ReleaseID: "release-2"},
		{ID: "BI-2", Status: models.StatusBlocked, Assignee: "adam", Labels: []string{"bug", "ui"}},
		{ID: "BI-3", Status: models.StatusReady, Priority: models.PriorityLow, ReleaseID: "release-1"},
		{ID: "BI-4", Status: models.StatusCompleted, Assignee: "zoe", Priority: models.PriorityCritical, ReleaseID: "release-2"},
		{ID: "BI-5", Status: "archived", Labels: []string{"backend"}},
	}
}

func TestDeriveColumns_AlwaysSetsViewType(t *testing.T) {
	t.Parallel()

	for _, view := range append(models.AllViewDimensions(), models.ViewDimension("bogus")) {
		cfg := DeriveColumns(view, sampleItems(), DefaultConfig(models.ViewStatus))
		assert.Equal(t, view, cfg.ViewType, "view %s", view)
	}
}

func TestDeriveColumns_StatusLeavesColumnsUntouched(t *testing.T) {
	t.Parallel()

	existing := models.KanbanBoardConfig{
		ViewType: models.ViewAssignee,
		Columns:  []models.KanbanColumn{{ID: "assignee-zoe", StatusValue: "zoe", Order: 1}},
	}

	cfg := DeriveColumns(models.ViewStatus, sampleItems(), existing)
	assert.Equal(t, existing.Columns, cfg.Columns)

	withOpen := DefaultConfig(models.ViewStatus)
	cfg = DeriveColumns(models.ViewStatus, sampleItems(), withOpen)
	assert.Equal(t, withOpen.Columns, cfg.Columns)
}

func TestDeriveColumns_SprintInstallsTemplateOnce(t *testing.T) {
	t.Parallel()

	cfg := DeriveColumns(models.ViewSprint, nil, DefaultConfig(models.ViewStatus))
	assert.Equal(t, columnIDs(SprintColumns()), columnIDs(cfg.Columns))

	custom := models.KanbanBoardConfig{Columns: []models.KanbanColumn{{ID: "sprint-42", Order: 1}}}
	cfg = DeriveColumns(models.ViewSprint, nil, custom)
	assert.Equal(t, []string{"sprint-42"}, columnIDs(cfg.Columns))
}

func TestDeriveColumns_AssigneeKeepsEncounterOrder(t *testing.T) {
	t.Parallel()

	cfg := DeriveColumns(models.ViewAssignee, sampleItems(), DefaultConfig(models.ViewStatus))

	assert.Equal(t, []string{"assignee-zoe", "assignee-adam", "assignee-unassigned"}, columnIDs(cfg.Columns))
	assert.Equal(t, "Unassigned", cfg.Columns[2].DisplayName)
	for i, col := range cfg.Columns {
		assert.Equal(t, i+1, col.Order)
	}
}

func TestDeriveColumns_AssigneeDoesNotDuplicateUnassigned(t *testing.T) {
	t.Parallel()

	items := []models.BacklogItem{{ID: "a", Assignee: "unassigned"}, {ID: "b", Assignee: "kim"}}
	cfg := DeriveColumns(models.ViewAssignee, items, models.KanbanBoardConfig{})
	assert.Equal(t, []string{"assignee-unassigned", "assignee-kim"}, columnIDs(cfg.Columns))
}

func TestDeriveColumns_PriorityIgnoresItems(t *testing.T) {
	t.Parallel()

	items := []models.BacklogItem{{ID: "a", Priority: "urgent"}}
	cfg := DeriveColumns(models.ViewPriority, items, models.KanbanBoardConfig{})

	assert.Equal(t, columnIDs(PriorityColumns()), columnIDs(cfg.Columns))
	assert.NotContains(t, columnIDs(cfg.Columns), "priority-urgent")
}

func TestDeriveColumns_Label(t *testing.T) {
	t.Parallel()

	t.Run("flattens and appends No Label", func(t *testing.T) {
		cfg := DeriveColumns(models.ViewLabel, sampleItems(), models.KanbanBoardConfig{})
		assert.Equal(t, []string{"label-ui", "label-bug", "label-backend", "label-No Label"}, columnIDs(cfg.Columns))
	})

	t.Run("no labels anywhere", func(t *testing.T) {
		items := []models.BacklogItem{{ID: "a"}, {ID: "b", Labels: []string{}}}
		cfg := DeriveColumns(models.ViewLabel, items, models.KanbanBoardConfig{})
		require.Len(t, cfg.Columns, 1)
		assert.Equal(t, models.SentinelNoLabel, cfg.Columns[0].StatusValue)
	})

	t.Run("No Label already in use is not duplicated", func(t *testing.T) {
		items := []models.BacklogItem{{ID: "a", Labels: []string{models.SentinelNoLabel, "x"}}}
		cfg := DeriveColumns(models.ViewLabel, items, models.KanbanBoardConfig{})
		assert.Equal(t, []string{"label-No Label", "label-x"}, columnIDs(cfg.Columns))
	})
}

func TestDeriveColumns_Release(t *testing.T) {
	t.Parallel()

	cfg := DeriveColumns(models.ViewRelease, sampleItems(), models.KanbanBoardConfig{})
	assert.Equal(t, []string{"release-release-2", "release-release-1", "release-unassigned"}, columnIDs(cfg.Columns))
}

func TestDeriveColumns_NilGeneratorLeavesColumns(t *testing.T) {
	t.Parallel()

	d := NewDeriver(nil)
	d.ReleaseColumn = nil

	existing := DefaultConfig(models.ViewStatus)
	cfg := d.DeriveColumns(models.ViewRelease, sampleItems(), existing)

	assert.Equal(t, existing.Columns, cfg.Columns)
	assert.Equal(t, models.ViewRelease, cfg.ViewType)
}

func TestDeriveColumns_UnknownViewLeavesColumns(t *testing.T) {
	t.Parallel()

	existing := DefaultConfig(models.ViewStatus)
	cfg := DeriveColumns(models.ViewDimension("epic"), sampleItems(), existing)
	assert.Equal(t, existing.Columns, cfg.Columns)
}

func TestDeriveColumns_Idempotent(t *testing.T) {
	t.Parallel()

	items := sampleItems()
	for _, view := range models.AllViewDimensions() {
		first := DeriveColumns(view, items, DefaultConfig(models.ViewStatus))
		second := DeriveColumns(view, items, first)
		assert.Equal(t, first, second, "view %s", view)
	}
}

func TestDeriveColumns_DoesNotMutateExisting(t *testing.T) {
	t.Parallel()

	existing := DefaultConfig(models.ViewStatus)
	before := existing.Clone()
	_ = DeriveColumns(models.ViewAssignee, sampleItems(), existing)
	assert.Equal(t, before, existing)
}

func TestNewDeriver_PaletteCycles(t *testing.T) {
	t.Parallel()

	d := NewDeriver([]string{"#111111", "#222222"})
	items := []models.BacklogItem{{ID: "a", Assignee: "x"}, {ID: "b", Assignee: "y"}, {ID: "c", Assignee: "z"}}
	cfg := d.DeriveColumns(models.ViewAssignee, items, models.KanbanBoardConfig{})

	require.Len(t, cfg.Columns, 4)
	assert.Equal(t, "#111111", cfg.Columns[0].Color)
	assert.Equal(t, "#222222", cfg.Columns[1].Color)
	assert.Equal(t, "#111111", cfg.Columns[2].Color)
	assert.Equal(t, models.NeutralColor, cfg.Columns[3].Color)
}
