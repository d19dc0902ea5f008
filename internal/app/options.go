package app

import (
	"log/slog"

	"github.com/thenoetrevino/paso/internal/board"
	"github.com/thenoetrevino/paso/internal/events"
	"github.com/thenoetrevino/paso/internal/notifications"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	notifier   notifications.Notifier
	createItem board.CreateItemFunc
	boardRepo  board.Repository
	publisher  events.Publisher
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithNotifier adds a notifier next to the built-in notification queue
func WithNotifier(n notifications.Notifier) Option {
	return func(cfg *appConfig) {
		cfg.notifier = n
	}
}

// WithCreateItem sets the callback the board hands item creation to
func WithCreateItem(fn board.CreateItemFunc) Option {
	return func(cfg *appConfig) {
		cfg.createItem = fn
	}
}

// WithBoardRepository overrides where the board config is persisted, e.g. for ephemeral boards
func WithBoardRepository(repo board.Repository) Option {
	return func(cfg *appConfig) {
		cfg.boardRepo = repo
	}
}

// WithPublisher announces board and item changes to other paso processes
func WithPublisher(p events.Publisher) Option {
	return func(cfg *appConfig) {
		cfg.publisher = p
	}
}
