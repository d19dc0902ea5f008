package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		// Key/value state; the board config lives under a single well-known key
		`CREATE TABLE IF NOT EXISTS kv_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS backlog_items (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			status TEXT NOT NULL,
			release_id TEXT,
			assignee TEXT,
			priority TEXT,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS backlog_item_labels (
			item_id TEXT NOT NULL,
			label TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (item_id, label),
			FOREIGN KEY (item_id) REFERENCES backlog_items(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_backlog_items_position
		ON backlog_items(position, created_at)`,
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
