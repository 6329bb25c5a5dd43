package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/routine-tracker/internal/store"
	"github.com/nhle/routine-tracker/tests/testutil"
)

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	s := testutil.NewTestStore(t)

	value, ok, err := s.Get(context.Background(), "routineProgress_1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSQLiteStore_SetThenGet(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "routineProgress_1", `{"5":{"Fajr Prayer":"Done"}}`))

	value, ok, err := s.Get(ctx, "routineProgress_1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"5":{"Fajr Prayer":"Done"}}`, value)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "first"))
	require.NoError(t, s.Set(ctx, "k", "second"))

	value, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestSQLiteStore_EmptyValueIsPresent(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", ""))

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSQLiteStore_KeysByPrefix(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "routineProgress_2", "{}"))
	require.NoError(t, s.Set(ctx, "routineProgress_10", "{}"))
	require.NoError(t, s.Set(ctx, "other", "{}"))
	require.NoError(t, s.Set(ctx, "routineProgressX1", "{}"))

	keys, err := s.Keys(ctx, "routineProgress_")
	require.NoError(t, err)
	assert.Equal(t, []string{"routineProgress_10", "routineProgress_2"}, keys)
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	ctx := context.Background()

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "routineProgress_3", `{"1":{"Sleep":"8h"}}`))
	require.NoError(t, s.Close())

	s, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	value, ok, err := s.Get(ctx, "routineProgress_3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"1":{"Sleep":"8h"}}`, value)
}

func TestNewSQLiteStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routinetracker", "nested", "progress.db")
	ctx := context.Background()

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "routineProgress_1", `{"5":{"Fajr Prayer":"Done"}}`))
	assert.FileExists(t, path)
}
