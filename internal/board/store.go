package board

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/paso/internal/models"
)

// DefaultStateKey is the well-known key the board config is stored under
const DefaultStateKey = "kanbanBoardConfig"

// Repository persists the serialized board config under a single key.
// Load reports found=false when nothing has been saved yet.
type Repository interface {
	Load(ctx context.Context) (data []byte, found bool, err error)
	Save(ctx context.Context, data []byte) error
}

// Store restores and persists KanbanBoardConfig through a Repository.
// There is no schema version: persisted shapes are merged as-is.
type Store struct {
	repo   Repository
	logger *slog.Logger
}

// NewStore creates a Store. A nil logger uses slog.Default().
func NewStore(repo Repository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{repo: repo, logger: logger}
}

// Restore loads the persisted config and merges it over fallback.
// The view dimension is always forced to current; the persisted one is discarded.
// Read and parse failures are logged and yield fallback; the store is left untouched.
// collapsed is seeded from the persisted defaultCollapsed when present.
func (s *Store) Restore(ctx context.Context, current models.ViewDimension, fallback models.KanbanBoardConfig) (cfg models.KanbanBoardConfig, collapsed []string) {
	cfg = fallback.Clone()
	cfg.ViewType = current

	if s.repo == nil {
		return cfg, cfg.DefaultCollapsed
	}

	data, found, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load board config", "error", err)
		return cfg, cfg.DefaultCollapsed
	}
	if !found {
		return cfg, cfg.DefaultCollapsed
	}

	var persisted models.KanbanBoardConfig
	if err := json.Unmarshal(data, &persisted); err != nil {
		s.logger.Error("failed to parse persisted board config", "error", err)
		return cfg, cfg.DefaultCollapsed
	}

	if persisted.Columns != nil {
		cfg.Columns = persisted.Columns
	}
	if persisted.DefaultCollapsed != nil {
		cfg.DefaultCollapsed = persisted.DefaultCollapsed
	}
	cfg.ViewType = current

	return cfg, cfg.DefaultCollapsed
}

// Persist serializes cfg and writes it back unconditionally
func (s *Store) Persist(ctx context.Context, cfg models.KanbanBoardConfig) error {
	if s.repo == nil {
		return nil
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode board config: %w", err)
	}
	if err := s.repo.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to save board config: %w", err)
	}
	return nil
}

// MemoryRepository is an in-process Repository, used for ephemeral boards and tests
type MemoryRepository struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryRepository returns a repository optionally preloaded with data
func NewMemoryRepository(data []byte) *MemoryRepository {
	return &MemoryRepository{data: data}
}

// Load returns the last saved payload
func (m *MemoryRepository) Load(ctx context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, false, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, true, nil
}

// Save replaces the stored payload
func (m *MemoryRepository) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.saves++
	return nil
}

// Saves reports how many times Save was called
func (m *MemoryRepository) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Clear drops the stored payload
func (m *MemoryRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}
