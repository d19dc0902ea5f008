package board

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/notifications"
)

// DialogState is the transient dialog state of the board
type DialogState struct {
	ConfigOpen    bool
	NewItemOpen   bool
	EditingItemID string
	DefaultStatus string
}

// Board owns the board config, the collapsed-column set and dialog state.
// Every config mutation is persisted immediately; there is no state machine,
// fields are assigned directly.
type Board struct {
	mu sync.Mutex

	store       *Store
	deriver     *Deriver
	notifier    notifications.Notifier
	createItem  CreateItemFunc
	logger      *slog.Logger
	bucketColor string
	newID       func() string

	config    models.KanbanBoardConfig
	collapsed map[string]bool
	dialog    DialogState
}

// NewBoard creates a board holding the default status configuration
func NewBoard(opts ...Option) *Board {
	cfg := defaultBoardConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.deriver == nil {
		cfg.deriver = NewDeriver(nil)
	}

	return &Board{
		store:       NewStore(cfg.repo, cfg.logger),
		deriver:     cfg.deriver,
		notifier:    cfg.notifier,
		createItem:  cfg.createItem,
		logger:      cfg.logger,
		bucketColor: cfg.bucketColor,
		newID:       cfg.newID,
		config:      DefaultConfig(models.ViewStatus),
		collapsed:   make(map[string]bool),
	}
}

// Mount restores the persisted config for the active view and derives its columns
func (b *Board) Mount(ctx context.Context, view models.ViewDimension, items []models.BacklogItem) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cfg, collapsed := b.store.Restore(ctx, view, DefaultConfig(view))
	b.config = cfg
	b.collapsed = make(map[string]bool, len(collapsed))
	for _, id := range collapsed {
		b.collapsed[id] = true
	}
	b.config.DefaultCollapsed = b.collapsedList()

	b.recompute(ctx, view, items)
}

// Recompute re-derives the columns for view from items.
// Call it whenever the active view or the item collection changes.
func (b *Board) Recompute(ctx context.Context, view models.ViewDimension, items []models.BacklogItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recompute(ctx, view, items)
}

func (b *Board) recompute(ctx context.Context, view models.ViewDimension, items []models.BacklogItem) {
	next := b.deriver.DeriveColumns(view, items, b.config)
	if configsEqual(next, b.config) {
		return
	}
	b.config = next
	b.persist(ctx)
}

// SetView switches the active dimension and re-derives the columns
func (b *Board) SetView(ctx context.Context, view models.ViewDimension, items []models.BacklogItem) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.config.Clone()
	next.ViewType = view
	b.updateBoardConfig(ctx, next)
	b.recompute(ctx, view, items)
}

// Config returns a deep copy of the current config
func (b *Board) Config() models.KanbanBoardConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.config.Clone()
}

// View partitions items into the current columns, left to right
func (b *Board) View(items []models.BacklogItem) []ColumnView {
	b.mu.Lock()
	defer b.mu.Unlock()

	collapsed := make(map[string]bool, len(b.collapsed))
	for id := range b.collapsed {
		collapsed[id] = true
	}
	return Partition(b.config, items, collapsed)
}

// ToggleColumn flips whether columnID is collapsed. Calling it twice restores the original set.
// The collapsed set is written to defaultCollapsed so it survives a restart.
func (b *Board) ToggleColumn(ctx context.Context, columnID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.collapsed[columnID] {
		delete(b.collapsed, columnID)
	} else {
		b.collapsed[columnID] = true
	}
	b.config.DefaultCollapsed = b.collapsedList()
	b.persist(ctx)
}

// IsCollapsed reports whether columnID is collapsed
func (b *Board) IsCollapsed(columnID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.collapsed[columnID]
}

// Collapsed returns the collapsed column ids, sorted
func (b *Board) Collapsed() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.collapsedList()
}

// UpdateBoardConfig replaces the config.
// Switching to sprint without sprint columns installs the sprint template; switching
// to status without status columns installs the status template. Otherwise the
// columns are taken as given. Closes the config dialog.
func (b *Board) UpdateBoardConfig(ctx context.Context, newConfig models.KanbanBoardConfig) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updateBoardConfig(ctx, newConfig)
}

func (b *Board) updateBoardConfig(ctx context.Context, newConfig models.KanbanBoardConfig) {
	next := newConfig.Clone()

	if next.ViewType != b.config.ViewType {
		switch next.ViewType {
		case models.ViewSprint:
			if !next.HasColumnPrefix(models.PrefixSprint) {
				next.Columns = SprintColumns()
			}
		case models.ViewStatus:
			if !hasStatusColumns(next) {
				next.Columns = DefaultStatusColumns()
			}
		}
	}

	next.Columns = renumber(SortedColumns(next))

	if newConfig.DefaultCollapsed != nil {
		b.collapsed = make(map[string]bool, len(newConfig.DefaultCollapsed))
		for _, id := range newConfig.DefaultCollapsed {
			b.collapsed[id] = true
		}
	}
	next.DefaultCollapsed = b.collapsedList()

	b.config = next
	b.dialog.ConfigOpen = false
	b.persist(ctx)
}

// AddBucket appends an ad-hoc column named "Bucket N" and announces it.
// N counts the buckets already on the board, so the first bucket is "Bucket 1".
func (b *Board) AddBucket(ctx context.Context) models.KanbanColumn {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.nextBucketNumber()
	col := models.KanbanColumn{
		ID:          models.PrefixBucket + b.newID(),
		DisplayName: fmt.Sprintf("Bucket %d", n),
		StatusValue: fmt.Sprintf("%s%d", models.PrefixBucket, n),
		Order:       len(b.config.Columns) + 1,
		Color:       b.bucketColor,
	}
	b.config.Columns = append(b.config.Columns, col)
	b.persist(ctx)

	b.notify(notifications.Info, fmt.Sprintf("Bucket %q created", col.DisplayName))
	return col
}

func (b *Board) nextBucketNumber() int {
	used := make(map[string]bool)
	count := 0
	for _, col := range b.config.Columns {
		if col.IsBucket() {
			count++
			used[col.StatusValue] = true
		}
	}
	n := count + 1
	for used[fmt.Sprintf("%s%d", models.PrefixBucket, n)] {
		n++
	}
	return n
}

// RemoveBucket deletes an ad-hoc column. Attribute-derived columns cannot be removed.
func (b *Board) RemoveBucket(ctx context.Context, columnID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.config.ColumnIndex(columnID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", models.ErrColumnNotFound, columnID)
	}
	if !b.config.Columns[idx].IsBucket() {
		return fmt.Errorf("%w: %s", models.ErrNotABucket, columnID)
	}

	removed := b.config.Columns[idx]
	cols := SortedColumns(b.config)
	si := slices.IndexFunc(cols, func(c models.KanbanColumn) bool { return c.ID == columnID })
	b.config.Columns = renumber(slices.Delete(cols, si, si+1))
	delete(b.collapsed, columnID)
	b.config.DefaultCollapsed = b.collapsedList()
	b.persist(ctx)

	b.notify(notifications.Info, fmt.Sprintf("%s removed", removed.DisplayName))
	return nil
}

// MoveColumn shifts a column delta positions (negative = left) and renumbers Order
func (b *Board) MoveColumn(ctx context.Context, columnID string, delta int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cols := SortedColumns(b.config)
	from := slices.IndexFunc(cols, func(c models.KanbanColumn) bool { return c.ID == columnID })
	if from < 0 {
		return fmt.Errorf("%w: %s", models.ErrColumnNotFound, columnID)
	}
	to := from + delta
	if to < 0 || to >= len(cols) {
		return fmt.Errorf("%w: %s", models.ErrInvalidMove, columnID)
	}
	if to == from {
		return nil
	}

	col := cols[from]
	cols = slices.Delete(cols, from, from+1)
	cols = slices.Insert(cols, to, col)
	b.config.Columns = renumber(cols)
	b.persist(ctx)
	return nil
}

// OpenConfigDialog marks the configuration dialog as open
func (b *Board) OpenConfigDialog() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dialog.ConfigOpen = true
}

// AddItem records status as the default for the next item and hands off to the creation callback
func (b *Board) AddItem(status string) {
	b.mu.Lock()
	b.dialog.DefaultStatus = status
	b.dialog.NewItemOpen = true
	fn := b.createItem
	b.mu.Unlock()

	if fn != nil {
		fn(status)
	}
}

// CreateItem starts item creation without a preselected column
func (b *Board) CreateItem() {
	b.AddItem("")
}

// EditItem opens the item dialog for an existing item
func (b *Board) EditItem(itemID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dialog.EditingItemID = itemID
	b.dialog.NewItemOpen = true
}

// NewItemSuccess resets the item dialog after the caller created the item
func (b *Board) NewItemSuccess() {
	b.resetItemDialog()
}

// NewItemCancel resets the item dialog; it converges to the same state as NewItemSuccess
func (b *Board) NewItemCancel() {
	b.resetItemDialog()
}

func (b *Board) resetItemDialog() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dialog.NewItemOpen = false
	b.dialog.EditingItemID = ""
	b.dialog.DefaultStatus = ""
}

// Dialog returns a snapshot of the dialog state
func (b *Board) Dialog() DialogState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dialog
}

func (b *Board) persist(ctx context.Context) {
	if err := b.store.Persist(ctx, b.config); err != nil {
		b.logger.Warn("board config not persisted", "error", err)
	}
}

func (b *Board) notify(severity notifications.Severity, message string) {
	if b.notifier == nil {
		return
	}
	b.notifier.Notify(notifications.Notification{Severity: severity, Message: message})
}

func (b *Board) collapsedList() []string {
	if len(b.collapsed) == 0 {
		return nil
	}
	out := make([]string, 0, len(b.collapsed))
	for id := range b.collapsed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// renumber sets Order to the 1-based slice position
func renumber(cols []models.KanbanColumn) []models.KanbanColumn {
	for i := range cols {
		cols[i].Order = i + 1
	}
	return cols
}

func configsEqual(a, b models.KanbanBoardConfig) bool {
	return a.ViewType == b.ViewType &&
		slices.Equal(a.Columns, b.Columns) &&
		slices.Equal(a.DefaultCollapsed, b.DefaultCollapsed)
}

// DescribeColumn renders "Display Name (id)" for logs and CLI output
func DescribeColumn(col models.KanbanColumn) string {
	if strings.EqualFold(col.DisplayName, col.ID) {
		return col.DisplayName
	}
	return fmt.Sprintf("%s (%s)", col.DisplayName, col.ID)
}
