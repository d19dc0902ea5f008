package board

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso/internal/models"
)

type failingRepository struct {
	loadErr error
	saveErr error
}

func (f failingRepository) Load(ctx context.Context) ([]byte, bool, error) {
	return nil, false, f.loadErr
}

func (f failingRepository) Save(ctx context.Context, data []byte) error {
	return f.saveErr
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestStore_RestoreForcesCurrentView(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository([]byte(`{"viewType":"assignee","columns":[{"id":"open","displayName":"Open","statusValue":"open","order":1,"color":"#fff"}],"defaultCollapsed":["open"]}`))
	store := NewStore(repo, nil)

	cfg, collapsed := store.Restore(context.Background(), models.ViewSprint, DefaultConfig(models.ViewSprint))

	assert.Equal(t, models.ViewSprint, cfg.ViewType)
	require.Len(t, cfg.Columns, 1)
	assert.Equal(t, "open", cfg.Columns[0].ID)
	assert.Equal(t, []string{"open"}, collapsed)
}

func TestStore_RestoreMalformedKeepsDefaultAndStore(t *testing.T) {
	t.Parallel()

	logger, buf := bufferLogger()
	repo := NewMemoryRepository([]byte(`{"viewType":`))
	store := NewStore(repo, logger)

	fallback := DefaultConfig(models.ViewStatus)
	cfg, collapsed := store.Restore(context.Background(), models.ViewStatus, fallback)

	assert.Equal(t, fallback, cfg)
	assert.Nil(t, collapsed)
	assert.Contains(t, buf.String(), "failed to parse persisted board config")

	data, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"viewType":`, string(data))
	assert.Zero(t, repo.Saves())
}

func TestStore_RestoreLoadErrorFallsBack(t *testing.T) {
	t.Parallel()

	logger, buf := bufferLogger()
	store := NewStore(failingRepository{loadErr: errors.New("disk gone")}, logger)

	cfg, _ := store.Restore(context.Background(), models.ViewPriority, DefaultConfig(models.ViewStatus))

	assert.Equal(t, models.ViewPriority, cfg.ViewType)
	assert.Equal(t, DefaultStatusColumns(), cfg.Columns)
	assert.Contains(t, buf.String(), "disk gone")
}

func TestStore_RestoreNothingSaved(t *testing.T) {
	t.Parallel()

	store := NewStore(NewMemoryRepository(nil), nil)
	cfg, collapsed := store.Restore(context.Background(), models.ViewLabel, DefaultConfig(models.ViewStatus))

	assert.Equal(t, models.ViewLabel, cfg.ViewType)
	assert.Equal(t, DefaultStatusColumns(), cfg.Columns)
	assert.Empty(t, collapsed)
}

func TestStore_PersistRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository(nil)
	store := NewStore(repo, nil)

	cfg := models.KanbanBoardConfig{
		ViewType:         models.ViewSprint,
		Columns:          SprintColumns(),
		DefaultCollapsed: []string{"sprint-future"},
	}
	require.NoError(t, store.Persist(context.Background(), cfg))

	restored, collapsed := store.Restore(context.Background(), models.ViewSprint, DefaultConfig(models.ViewSprint))
	assert.Equal(t, cfg.Columns, restored.Columns)
	assert.Equal(t, []string{"sprint-future"}, collapsed)
}

func TestStore_PersistWrapsSaveError(t *testing.T) {
	t.Parallel()

	store := NewStore(failingRepository{saveErr: errors.New("quota exceeded")}, nil)
	err := store.Persist(context.Background(), DefaultConfig(models.ViewStatus))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestStore_NilRepository(t *testing.T) {
	t.Parallel()

	store := NewStore(nil, nil)
	assert.NoError(t, store.Persist(context.Background(), DefaultConfig(models.ViewStatus)))

	cfg, _ := store.Restore(context.Background(), models.ViewStatus, DefaultConfig(models.ViewStatus))
	assert.Equal(t, DefaultStatusColumns(), cfg.Columns)
}

func TestMemoryRepository_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository([]byte(`{}`))
	require.NoError(t, repo.Clear(ctx))

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
