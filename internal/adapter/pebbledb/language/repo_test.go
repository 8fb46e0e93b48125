package language

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langlearn/langlearn-backend/internal/adapter/pebbledb"
	"github.com/langlearn/langlearn-backend/internal/domain"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := pebbledb.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return New(db.Map("lang/"))
}

func TestRepo_PutGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	lang := &domain.Language{ID: "l1", Title: "Go"}
	require.NoError(t, repo.Put(ctx, lang))

	got, err := repo.Get(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, lang, got)
}

func TestRepo_Get_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_GetByTitle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &domain.Language{ID: "l1", Title: "Go"}))
	require.NoError(t, repo.Put(ctx, &domain.Language{ID: "l2", Title: "Rust"}))

	got, err := repo.GetByTitle(ctx, "Rust")
	require.NoError(t, err)
	assert.Equal(t, "l2", got.ID)

	// Exact case-sensitive match only.
	_, err = repo.GetByTitle(ctx, "rust")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_List(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	langs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, langs)

	require.NoError(t, repo.Put(ctx, &domain.Language{ID: "l1", Title: "Go"}))
	require.NoError(t, repo.Put(ctx, &domain.Language{ID: "l2", Title: "Rust"}))

	langs, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, langs, 2)
}

func TestRepo_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &domain.Language{ID: "l1", Title: "Go"}))
	require.NoError(t, repo.Delete(ctx, "l1"))

	_, err := repo.Get(ctx, "l1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "l1"), domain.ErrNotFound)
}
