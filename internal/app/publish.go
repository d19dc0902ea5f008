package app

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/paso/internal/board"
	"github.com/thenoetrevino/paso/internal/events"
)

// publishRetries bounds how long a mutation waits on a busy daemon queue
const publishRetries = 3

// publishingRepository announces every save that changes the stored board config.
// Saves of identical bytes stay silent, so a board remounting after an event
// does not echo the event back.
type publishingRepository struct {
	board.Repository
	publisher events.Publisher

	mu   sync.Mutex
	last []byte
}

func newPublishingRepository(repo board.Repository, p events.Publisher) *publishingRepository {
	return &publishingRepository{Repository: repo, publisher: p}
}

func (r *publishingRepository) Load(ctx context.Context) ([]byte, bool, error) {
	data, found, err := r.Repository.Load(ctx)
	if err == nil {
		r.remember(data)
	}
	return data, found, err
}

func (r *publishingRepository) Save(ctx context.Context, data []byte) error {
	if err := r.Repository.Save(ctx, data); err != nil {
		return err
	}

	r.mu.Lock()
	changed := !bytes.Equal(r.last, data)
	r.last = bytes.Clone(data)
	r.mu.Unlock()

	if changed {
		_ = events.PublishWithRetry(r.publisher, events.Event{Type: events.EventBoardChanged}, publishRetries)
	}
	return nil
}

// Clear forwards to the wrapped repository when it supports clearing
func (r *publishingRepository) Clear(ctx context.Context) error {
	c, ok := r.Repository.(interface {
		Clear(ctx context.Context) error
	})
	if !ok {
		return errors.New("board repository cannot be cleared")
	}
	if err := c.Clear(ctx); err != nil {
		return err
	}
	r.remember(nil)
	_ = events.PublishWithRetry(r.publisher, events.Event{Type: events.EventBoardChanged}, publishRetries)
	return nil
}

func (r *publishingRepository) remember(data []byte) {
	r.mu.Lock()
	r.last = bytes.Clone(data)
	r.mu.Unlock()
}
