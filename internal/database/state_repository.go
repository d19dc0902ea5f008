package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/paso/internal/board"
)

// Compile-time verification that *StateRepository persists board configs
var _ board.Repository = (*StateRepository)(nil)

// StateRepository stores one serialized value under a fixed key in kv_state
type StateRepository struct {
	db  *sql.DB
	key string
}

// NewStateRepository binds a repository to key. An empty key uses board.DefaultStateKey.
func NewStateRepository(db *sql.DB, key string) *StateRepository {
	if key == "" {
		key = board.DefaultStateKey
	}
	return &StateRepository{db: db, key: key}
}

// Key returns the key this repository reads and writes
func (r *StateRepository) Key() string {
	return r.key
}

// Load returns the stored value; found is false when the key has never been written
func (r *StateRepository) Load(ctx context.Context) ([]byte, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_state WHERE key = ?`, r.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state %q: %w", r.key, err)
	}
	return []byte(value), true, nil
}

// Save upserts the value
func (r *StateRepository) Save(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		r.key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write state %q: %w", r.key, err)
	}
	return nil
}

// Clear removes the stored value
func (r *StateRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_state WHERE key = ?`, r.key); err != nil {
		return fmt.Errorf("failed to clear state %q: %w", r.key, err)
	}
	return nil
}
