package board

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/notifications"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func newTestBoard(t *testing.T, opts ...Option) (*Board, *MemoryRepository, *notifications.Queue) {
	t.Helper()
	repo := NewMemoryRepository(nil)
	queue := &notifications.Queue{}
	logger, _ := bufferLogger()
	opts = append([]Option{
		WithRepository(repo),
		WithNotifier(queue),
		WithLogger(logger),
		WithIDGenerator(sequentialIDs()),
	}, opts...)
	return NewBoard(opts...), repo, queue
}

func TestBoard_ToggleColumnIsSelfInverse(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewStatus, nil)
	b.ToggleColumn(ctx, "ready")
	before := b.Collapsed()

	b.ToggleColumn(ctx, "open")
	assert.True(t, b.IsCollapsed("open"))
	b.ToggleColumn(ctx, "open")

	assert.Equal(t, before, b.Collapsed())
	assert.False(t, b.IsCollapsed("open"))
}

func TestBoard_ToggleColumnPersistsCollapsedSet(t *testing.T) {
	t.Parallel()

	b, repo, _ := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewStatus, nil)
	b.ToggleColumn(ctx, "blocked")

	reloaded := NewBoard(WithRepository(repo))
	reloaded.Mount(ctx, models.ViewStatus, nil)
	assert.True(t, reloaded.IsCollapsed("blocked"))
}

func TestBoard_UpdateBoardConfigRoundTrip(t *testing.T) {
	t.Parallel()

	b, repo, _ := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewStatus, nil)

	cfg := models.KanbanBoardConfig{
		ViewType: models.ViewStatus,
		Columns: []models.KanbanColumn{
			{ID: "open", DisplayName: "Todo", StatusValue: "open", Order: 1, Color: "#000000"},
			{ID: "completed", DisplayName: "Done", StatusValue: "completed", Order: 2, Color: "#FFFFFF"},
		},
	}
	b.UpdateBoardConfig(ctx, cfg)

	reloaded := NewBoard(WithRepository(repo))
	reloaded.Mount(ctx, models.ViewStatus, nil)
	assert.Equal(t, cfg.Columns, reloaded.Config().Columns)
}

func TestBoard_UpdateBoardConfigInstallsSprintTemplate(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewStatus, nil)

	next := b.Config()
	next.ViewType = models.ViewSprint
	b.UpdateBoardConfig(ctx, next)

	got := b.Config()
	assert.Equal(t, models.ViewSprint, got.ViewType)
	assert.Equal(t, columnIDs(SprintColumns()), columnIDs(got.Columns))
}

func TestBoard_UpdateBoardConfigInstallsStatusTemplate(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewPriority, nil)
	require.Equal(t, columnIDs(PriorityColumns()), columnIDs(b.Config().Columns))

	next := b.Config()
	next.ViewType = models.ViewStatus
	b.UpdateBoardConfig(ctx, next)

	assert.Equal(t, DefaultStatusColumns(), b.Config().Columns)
}

func TestBoard_UpdateBoardConfigTrustsColumnsOtherwise(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewStatus, nil)
	b.OpenConfigDialog()
	require.True(t, b.Dialog().ConfigOpen)

	custom := []models.KanbanColumn{{ID: "anything", StatusValue: "x", Order: 7}}
	b.UpdateBoardConfig(ctx, models.KanbanBoardConfig{ViewType: models.ViewStatus, Columns: custom})

	got := b.Config().Columns
	require.Len(t, got, 1)
	assert.Equal(t, "anything", got[0].ID)
	assert.Equal(t, 1, got[0].Order)
	assert.False(t, b.Dialog().ConfigOpen)
}

func TestBoard_AddBucketThreeTimes(t *testing.T) {
	t.Parallel()

	b, repo, queue := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewStatus, nil)
	savesBefore := repo.Saves()

	var buckets []models.KanbanColumn
	for range 3 {
		buckets = append(buckets, b.AddBucket(ctx))
	}

	assert.Equal(t, "Bucket 1", buckets[0].DisplayName)
	assert.Equal(t, "Bucket 2", buckets[1].DisplayName)
	assert.Equal(t, "Bucket 3", buckets[2].DisplayName)
	assert.Equal(t, "bucket-2", buckets[1].StatusValue)
	assert.Equal(t, "bucket-id1", buckets[0].ID)
	assert.Less(t, buckets[0].Order, buckets[1].Order)
	assert.Less(t, buckets[1].Order, buckets[2].Order)
	assert.Equal(t, len(DefaultStatusColumns())+3, buckets[2].Order)
	assert.Equal(t, models.NeutralColor, buckets[0].Color)

	assert.Equal(t, savesBefore+3, repo.Saves())

	notes := queue.Drain()
	require.Len(t, notes, 3)
	assert.Equal(t, notifications.Info, notes[0].Severity)
	assert.Equal(t, `Bucket "Bucket 1" created`, notes[0].Message)
}

func TestBoard_BucketsShowInStatusView(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewStatus, nil)
	bucket := b.AddBucket(ctx)

	items := []models.BacklogItem{{ID: "x", Status: bucket.StatusValue}}
	views := b.View(items)
	last := views[len(views)-1]
	assert.Equal(t, bucket.ID, last.Column.ID)
	assert.Equal(t, []string{"x"}, itemIDs(last.Items))
}

func TestBoard_RemoveBucket(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewStatus, nil)
	first := b.AddBucket(ctx)
	second := b.AddBucket(ctx)

	require.NoError(t, b.RemoveBucket(ctx, first.ID))
	assert.False(t, b.Config().HasColumn(first.ID))

	third := b.AddBucket(ctx)
	assert.NotEqual(t, second.StatusValue, third.StatusValue)

	err := b.RemoveBucket(ctx, "open")
	assert.True(t, errors.Is(err, models.ErrNotABucket))

	err = b.RemoveBucket(ctx, "bucket-missing")
	assert.True(t, errors.Is(err, models.ErrColumnNotFound))

	for i, col := range b.Config().Columns {
		assert.Equal(t, i+1, col.Order)
	}
}

func TestBoard_MoveColumn(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	ctx := context.Background()
	b.Mount(ctx, models.ViewStatus, nil)

	require.NoError(t, b.MoveColumn(ctx, "deferred", -5))
	cols := b.Config().Columns
	assert.Equal(t, "deferred", cols[0].ID)
	assert.Equal(t, "open", cols[1].ID)
	for i, col := range cols {
		assert.Equal(t, i+1, col.Order)
	}

	assert.ErrorIs(t, b.MoveColumn(ctx, "deferred", -1), models.ErrInvalidMove)
	assert.ErrorIs(t, b.MoveColumn(ctx, "nope", 1), models.ErrColumnNotFound)
	assert.NoError(t, b.MoveColumn(ctx, "open", 0))
}

func TestBoard_ItemDialogPassThrough(t *testing.T) {
	t.Parallel()

	var got []string
	b, _, _ := newTestBoard(t, WithCreateItem(func(status string) { got = append(got, status) }))

	b.AddItem(models.StatusBlocked)
	assert.Equal(t, []string{models.StatusBlocked}, got)
	assert.Equal(t, DialogState{NewItemOpen: true, DefaultStatus: models.StatusBlocked}, b.Dialog())

	b.NewItemSuccess()
	afterSuccess := b.Dialog()

	b.CreateItem()
	assert.Equal(t, []string{models.StatusBlocked, ""}, got)
	b.EditItem("BI-9")
	assert.Equal(t, "BI-9", b.Dialog().EditingItemID)

	b.NewItemCancel()
	assert.Equal(t, afterSuccess, b.Dialog())
	assert.Equal(t, DialogState{}, b.Dialog())
}

func TestBoard_AddItemWithoutCallback(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	assert.NotPanics(t, func() { b.AddItem(models.StatusOpen) })
}

func TestBoard_SetViewRoundTripsThroughDimensions(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	ctx := context.Background()
	items := sampleItems()
	b.Mount(ctx, models.ViewStatus, items)

	b.SetView(ctx, models.ViewAssignee, items)
	assert.Equal(t, []string{"assignee-zoe", "assignee-adam", "assignee-unassigned"}, columnIDs(b.Config().Columns))

	b.SetView(ctx, models.ViewSprint, items)
	assert.Equal(t, columnIDs(SprintColumns()), columnIDs(b.Config().Columns))

	b.SetView(ctx, models.ViewStatus, items)
	assert.Equal(t, DefaultStatusColumns(), b.Config().Columns)
	assert.Equal(t, models.ViewStatus, b.Config().ViewType)
}

func TestBoard_RecomputeSkipsPersistWhenUnchanged(t *testing.T) {
	t.Parallel()

	b, repo, _ := newTestBoard(t)
	ctx := context.Background()
	items := sampleItems()
	b.Mount(ctx, models.ViewAssignee, items)
	saves := repo.Saves()

	b.Recompute(ctx, models.ViewAssignee, items)
	assert.Equal(t, saves, repo.Saves())

	items = append(items, models.BacklogItem{ID: "BI-6", Assignee: "lee"})
	b.Recompute(ctx, models.ViewAssignee, items)
	assert.Equal(t, saves+1, repo.Saves())
	assert.Contains(t, columnIDs(b.Config().Columns), "assignee-lee")
}

func TestBoard_MountWithMalformedStateUsesDefault(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository([]byte("not json"))
	logger, _ := bufferLogger()
	b := NewBoard(WithRepository(repo), WithLogger(logger))
	b.Mount(context.Background(), models.ViewStatus, nil)

	assert.Equal(t, DefaultStatusColumns(), b.Config().Columns)
	assert.Empty(t, b.Collapsed())
}

func TestBoard_ConfigReturnsCopy(t *testing.T) {
	t.Parallel()

	b, _, _ := newTestBoard(t)
	cfg := b.Config()
	cfg.Columns[0].DisplayName = "mutated"
	assert.Equal(t, "Open", b.Config().Columns[0].DisplayName)
}

func TestDescribeColumn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Open", DescribeColumn(models.KanbanColumn{ID: "open", DisplayName: "Open"}))
	assert.Equal(t, "Bucket 1 (bucket-x)", DescribeColumn(models.KanbanColumn{ID: "bucket-x", DisplayName: "Bucket 1"}))
}
