package board

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/thenoetrevino/paso/internal/models"
	"github.com/thenoetrevino/paso/internal/notifications"
)

// CreateItemFunc is invoked when the board asks the caller to start creating an item.
// defaultStatus is empty when no column was chosen.
type CreateItemFunc func(defaultStatus string)

// Option is a functional option for configuring a Board
type Option func(*boardConfig)

// boardConfig holds the dependencies used to build a Board
type boardConfig struct {
	repo        Repository
	notifier    notifications.Notifier
	createItem  CreateItemFunc
	deriver     *Deriver
	logger      *slog.Logger
	bucketColor string
	newID       func() string
}

func defaultBoardConfig() *boardConfig {
	return &boardConfig{
		bucketColor: models.NeutralColor,
		newID:       func() string { return uuid.NewString() },
	}
}

// WithRepository sets where the board config is persisted
func WithRepository(repo Repository) Option {
	return func(cfg *boardConfig) {
		cfg.repo = repo
	}
}

// WithNotifier sets the side channel used to announce board changes
func WithNotifier(n notifications.Notifier) Option {
	return func(cfg *boardConfig) {
		cfg.notifier = n
	}
}

// WithCreateItem sets the callback that owns actual item creation
func WithCreateItem(fn CreateItemFunc) Option {
	return func(cfg *boardConfig) {
		cfg.createItem = fn
	}
}

// WithDeriver replaces the default column deriver
func WithDeriver(d *Deriver) Option {
	return func(cfg *boardConfig) {
		cfg.deriver = d
	}
}

// WithLogger sets the logger for the board
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *boardConfig) {
		cfg.logger = logger
	}
}

// WithBucketColor sets the color token given to new buckets
func WithBucketColor(color string) Option {
	return func(cfg *boardConfig) {
		if color != "" {
			cfg.bucketColor = color
		}
	}
}

// WithIDGenerator overrides how bucket column ids are generated
func WithIDGenerator(fn func() string) Option {
	return func(cfg *boardConfig) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}
