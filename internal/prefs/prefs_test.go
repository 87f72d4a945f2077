package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreitag/launchdex/internal/store"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	repo, err := NewSQLiteRepository(context.Background(), st)
	require.NoError(t, err)
	return repo
}

func TestGetUnsetKey(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "theme")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", ThemeDark))

	p, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "theme", p.Key)
	assert.Equal(t, ThemeDark, p.Value)
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestSetOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", ThemeDark))
	require.NoError(t, repo.Set(ctx, "theme", ThemeLight))

	p, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, p.Value)
}

func TestMigrationsIdempotent(t *testing.T) {
	st, err := store.New(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	_, err = NewSQLiteRepository(ctx, st)
	require.NoError(t, err)

	// A second repository over the same store must not re-run migrations.
	_, err = NewSQLiteRepository(ctx, st)
	require.NoError(t, err)
}
