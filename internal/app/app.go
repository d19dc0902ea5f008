package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/paso/internal/board"
	"github.com/thenoetrevino/paso/internal/config"
	"github.com/thenoetrevino/paso/internal/database"
	"github.com/thenoetrevino/paso/internal/events"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/notifications"
)

// selectedViewKey stores which dimension the user last selected.
// It is kept apart from the board config, whose viewType is never trusted on restore.
const selectedViewKey = "kanbanBoardView"

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	// Repository layer (direct database access)
	Items     database.ItemRepository
	selection *database.StateRepository
	boardRepo board.Repository
	boardOpts []board.Option
	publisher events.Publisher

	// Board engine
	Board *board.Board

	// Notifications raised by the board, drained by the CLI or TUI
	Notifications *notifications.Queue
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}

	boardRepo := ac.boardRepo
	if boardRepo == nil {
		boardRepo = database.NewStateRepository(db, cfg.Board.StateKey)
	}
	if ac.publisher != nil {
		boardRepo = newPublishingRepository(boardRepo, ac.publisher)
	}

	queue := &notifications.Queue{}
	boardOpts := []board.Option{
		board.WithNotifier(notifications.Multi(queue, notifications.LogNotifier{Logger: ac.logger}, ac.notifier)),
		board.WithCreateItem(ac.createItem),
		board.WithDeriver(board.NewDeriver(cfg.Board.Palette)),
		board.WithLogger(ac.logger),
		board.WithBucketColor(cfg.Board.BucketColor),
	}
	b := board.NewBoard(append([]board.Option{board.WithRepository(boardRepo)}, boardOpts...)...)

	return &App{
		cfg:           cfg,
		logger:        ac.logger,
		Items:         database.NewItemRepository(db),
		selection:     database.NewStateRepository(db, selectedViewKey),
		boardRepo:     boardRepo,
		boardOpts:     boardOpts,
		publisher:     ac.publisher,
		Board:         b,
		Notifications: queue,
	}
}

// Config returns the configuration the app was built with
func (a *App) Config() *config.Config {
	return a.cfg
}

// CurrentView returns the last selected dimension, or the configured default
func (a *App) CurrentView(ctx context.Context) models.ViewDimension {
	data, found, err := a.selection.Load(ctx)
	if err != nil {
		a.logger.Warn("failed to load selected view", "error", err)
	}
	if found {
		if view, err := models.ParseViewDimension(string(data)); err == nil {
			return view
		}
	}
	if view, err := models.ParseViewDimension(a.cfg.Board.DefaultView); err == nil {
		return view
	}
	return models.ViewStatus
}

// Mount loads the items and mounts the board on view
func (a *App) Mount(ctx context.Context, view models.ViewDimension) ([]models.BacklogItem, error) {
	items, err := a.Items.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	a.Board.Mount(ctx, view, items)
	a.logger.Debug("board mounted", "view", view, "items", len(items), "columns", len(a.Board.Config().Columns))
	return items, nil
}

// SelectView switches the board to view and remembers the selection
func (a *App) SelectView(ctx context.Context, view models.ViewDimension) ([]models.BacklogItem, error) {
	if !view.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownViewDimension, view)
	}
	items, err := a.Items.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	if err := a.selection.Save(ctx, []byte(view)); err != nil {
		return nil, err
	}
	a.Board.SetView(ctx, view, items)
	return items, nil
}

// Refresh reloads the items and re-derives the columns for view
func (a *App) Refresh(ctx context.Context, view models.ViewDimension) ([]models.BacklogItem, error) {
	items, err := a.Items.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	a.Board.Recompute(ctx, view, items)
	return items, nil
}

// Ephemeral returns a board seeded from the persisted config whose writes stay in memory
func (a *App) Ephemeral(ctx context.Context) (*board.Board, error) {
	data, _, err := a.boardRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board config: %w", err)
	}
	opts := append([]board.Option{board.WithRepository(board.NewMemoryRepository(data))}, a.boardOpts...)
	return board.NewBoard(opts...), nil
}

// ResetBoard forgets the persisted board config and remounts view from defaults
func (a *App) ResetBoard(ctx context.Context, view models.ViewDimension) ([]models.BacklogItem, error) {
	c, ok := a.boardRepo.(interface {
		Clear(ctx context.Context) error
	})
	if !ok {
		return nil, fmt.Errorf("board repository %T cannot be reset", a.boardRepo)
	}
	if err := c.Clear(ctx); err != nil {
		return nil, err
	}
	a.logger.Info("board config reset", "view", view)
	return a.Mount(ctx, view)
}

// CreateItem runs the whole item-creation flow for callers without a dialog:
// the board records the default status, then the item is submitted.
func (a *App) CreateItem(ctx context.Context, view models.ViewDimension, req database.CreateItemRequest) (models.BacklogItem, error) {
	a.Board.AddItem(req.Status)
	return a.SubmitItem(ctx, view, req)
}

// SubmitItem stores the item from an open new-item dialog and re-derives the columns.
// A blank status falls back to the dialog's default status.
func (a *App) SubmitItem(ctx context.Context, view models.ViewDimension, req database.CreateItemRequest) (models.BacklogItem, error) {
	if req.Status == "" {
		req.Status = a.Board.Dialog().DefaultStatus
	}

	item, err := a.Items.CreateItem(ctx, req)
	if err != nil {
		a.Board.NewItemCancel()
		return models.BacklogItem{}, err
	}
	a.Board.NewItemSuccess()
	a.logger.Info("item created", "id", item.ID, "status", item.Status)
	a.itemsChanged(view)

	if _, err := a.Refresh(ctx, view); err != nil {
		return item, err
	}
	return item, nil
}

// MoveItem sets the item's status and re-derives the columns for view.
// Moving an item onto a bucket's status value places it in that bucket.
func (a *App) MoveItem(ctx context.Context, view models.ViewDimension, id, status string) (models.BacklogItem, error) {
	status = strings.TrimSpace(status)
	if err := a.Items.UpdateItemStatus(ctx, id, status); err != nil {
		return models.BacklogItem{}, err
	}
	item, err := a.Items.GetItem(ctx, id)
	if err != nil {
		return models.BacklogItem{}, err
	}
	a.logger.Info("item moved", "id", id, "status", status)
	a.itemsChanged(view)

	if _, err := a.Refresh(ctx, view); err != nil {
		return item, err
	}
	return item, nil
}

// DeleteItem removes the item and re-derives the columns for view
func (a *App) DeleteItem(ctx context.Context, view models.ViewDimension, id string) error {
	if err := a.Items.DeleteItem(ctx, id); err != nil {
		return err
	}
	a.logger.Info("item deleted", "id", id)
	a.itemsChanged(view)

	_, err := a.Refresh(ctx, view)
	return err
}

func (a *App) itemsChanged(view models.ViewDimension) {
	if a.publisher == nil {
		return
	}
	_ = events.PublishWithRetry(a.publisher, events.Event{Type: events.EventItemsChanged, View: string(view)}, publishRetries)
}

// Close performs cleanup of application resources.
// The database handle is owned by the caller.
func (a *App) Close() error {
	return nil
}
