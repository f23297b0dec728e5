package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "expenses.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, path
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "expenses")
	require.NoError(t, err)
	require.False(t, ok, "missing key must read as absent, not as an error")

	require.NoError(t, store.Set(ctx, "expenses", `[{"id":"1"}]`))

	value, ok, err := store.Get(ctx, "expenses")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"1"}]`, value)
}

func TestStoreUpsert(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "old"))
	require.NoError(t, store.Set(ctx, "k", "new"))

	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "new", value)
}

func TestStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "categories", "[]"))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "categories")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", value)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	_, path := newTestStore(t)

	// A second run must be a no-op, not a failure.
	require.NoError(t, RunMigrations(path))
}
