package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/slumber/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_SetAndGet(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "answer", "42"))

	got, err := kv.Get(ctx, "answer")
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestKVStore_SetOverwrites(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyDarkMode, "false"))
	require.NoError(t, kv.Set(ctx, KeyDarkMode, "true"))

	got, err := kv.Get(ctx, KeyDarkMode)
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestKVStore_Get_NotFound(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))

	_, err := kv.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKVStore_Delete(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v"))
	require.NoError(t, kv.Delete(ctx, "k"))

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, kv.Delete(ctx, "k"))
}
