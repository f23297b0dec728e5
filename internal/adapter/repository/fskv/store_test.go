package fskv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
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

func TestStoreOverwrite(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
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

	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "categories", "[]"))

	second, err := NewStore(dir)
	require.NoError(t, err)

	value, ok, err := second.Get(ctx, "categories")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", value)
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "expenses", "[]"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "expenses.json", entries[0].Name())
}

func TestStoreCreatesDataDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
