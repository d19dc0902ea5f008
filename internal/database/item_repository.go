package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/paso/internal/models"
)

// ItemRepository reads and writes backlog items.
// The board engine only reads them; writes come from the item-creation flow.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]models.BacklogItem, error)
	GetItem(ctx context.Context, id string) (models.BacklogItem, error)
	CreateItem(ctx context.Context, req CreateItemRequest) (models.BacklogItem, error)
	UpdateItemStatus(ctx context.Context, id, status string) error
	DeleteItem(ctx context.Context, id string) error
}

// CreateItemRequest encapsulates data for creating a backlog item
type CreateItemRequest struct {
	ID        string // Optional: generated when empty
	Title     string
	Status    string // Optional: defaults to "open"
	ReleaseID string
	Assignee  string
	Priority  string
	Labels    []string
}

// Compile-time verification that *SQLiteItemRepository implements ItemRepository
var _ ItemRepository = (*SQLiteItemRepository)(nil)

// SQLiteItemRepository implements ItemRepository on the backlog_items tables
type SQLiteItemRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sql.DB) *SQLiteItemRepository {
	return &SQLiteItemRepository{db: db, now: time.Now}
}

// ListItems returns every item in insertion order, labels attached
func (r *SQLiteItemRepository) ListItems(ctx context.Context) ([]models.BacklogItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, status, release_id, assignee, priority, created_at
		 FROM backlog_items ORDER BY position, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []models.BacklogItem
	index := make(map[string]int)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	labelRows, err := r.db.QueryContext(ctx,
		`SELECT item_id, label FROM backlog_item_labels ORDER BY item_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	defer labelRows.Close()

	for labelRows.Next() {
		var itemID, label string
		if err := labelRows.Scan(&itemID, &label); err != nil {
			return nil, err
		}
		if i, ok := index[itemID]; ok {
			items[i].Labels = append(items[i].Labels, label)
		}
	}

	return items, labelRows.Err()
}

// GetItem retrieves a single item with its labels
func (r *SQLiteItemRepository) GetItem(ctx context.Context, id string) (models.BacklogItem, error) {
	if strings.TrimSpace(id) == "" {
		return models.BacklogItem{}, ErrInvalidItemID
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, status, release_id, assignee, priority, created_at
		 FROM backlog_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BacklogItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if err != nil {
		return models.BacklogItem{}, err
	}

	labels, err := r.labelsFor(ctx, id)
	if err != nil {
		return models.BacklogItem{}, err
	}
	item.Labels = labels
	return item, nil
}

// CreateItem inserts an item at the end of the backlog
func (r *SQLiteItemRepository) CreateItem(ctx context.Context, req CreateItemRequest) (models.BacklogItem, error) {
	if err := validateCreateItem(req); err != nil {
		return models.BacklogItem{}, err
	}

	item := models.BacklogItem{
		ID:        req.ID,
		Title:     strings.TrimSpace(req.Title),
		Status:    req.Status,
		ReleaseID: req.ReleaseID,
		Assignee:  req.Assignee,
		Priority:  req.Priority,
		Labels:    dedupeLabels(req.Labels),
		CreatedAt: r.now().UTC(),
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Status == "" {
		item.Status = models.StatusOpen
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var position int
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) + 1 FROM backlog_items`).Scan(&position); err != nil {
			return fmt.Errorf("failed to get next position: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO backlog_items (id, title, status, release_id, assignee, priority, position, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.Title, item.Status,
			nullString(item.ReleaseID), nullString(item.Assignee), nullString(item.Priority),
			position, item.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}

		for i, label := range item.Labels {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO backlog_item_labels (item_id, label, position) VALUES (?, ?, ?)`,
				item.ID, label, i,
			); err != nil {
				return fmt.Errorf("failed to attach label %q: %w", label, err)
			}
		}
		return nil
	})
	if err != nil {
		return models.BacklogItem{}, err
	}

	return item, nil
}

// UpdateItemStatus moves an item to a new status value
func (r *SQLiteItemRepository) UpdateItemStatus(ctx context.Context, id, status string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidItemID
	}
	if strings.TrimSpace(status) == "" {
		return ErrEmptyStatus
	}
	result, err := r.db.ExecContext(ctx, `UPDATE backlog_items SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return requireAffected(result, id)
}

// DeleteItem removes an item and its labels
func (r *SQLiteItemRepository) DeleteItem(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidItemID
	}
	result, err := r.db.ExecContext(ctx, `DELETE FROM backlog_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return requireAffected(result, id)
}

func (r *SQLiteItemRepository) labelsFor(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT label FROM backlog_item_labels WHERE item_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (models.BacklogItem, error) {
	var item models.BacklogItem
	var releaseID, assignee, priority sql.NullString
	var createdAt sql.NullTime
	if err := s.Scan(&item.ID, &item.Title, &item.Status, &releaseID, &assignee, &priority, &createdAt); err != nil {
		return models.BacklogItem{}, err
	}
	item.ReleaseID = NullStringToString(releaseID)
	item.Assignee = NullStringToString(assignee)
	item.Priority = NullStringToString(priority)
	if createdAt.Valid {
		item.CreatedAt = createdAt.Time
	}
	return item, nil
}

func requireAffected(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return nil
}

func validateCreateItem(req CreateItemRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > 255 {
		return ErrTitleTooLong
	}
	return nil
}

// dedupeLabels drops blanks and repeats, keeping first-seen order.
// The "No Label" sentinel is reserved for unlabelled items and is dropped too.
func dedupeLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" || l == models.SentinelNoLabel || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
