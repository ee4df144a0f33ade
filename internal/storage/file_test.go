package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	records := []CartRecord{{ProductID: 1, Quantity: 2}, {ProductID: 7, Quantity: 1}}
	require.NoError(t, store.Save(ctx, KeyCart, records))

	var loaded []CartRecord
	found, err := store.Load(ctx, KeyCart, &loaded)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, records, loaded)
}

func TestFileStoreMissingKey(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var loaded []CartRecord
	found, err := store.Load(ctx, KeyCart, &loaded)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreCorruptRecordReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyCart+".json"), []byte("{not json"), 0o644))

	var loaded []CartRecord
	found, err := store.Load(ctx, KeyCart, &loaded)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, KeyAdminToken, "tok"))
	require.NoError(t, store.Delete(ctx, KeyAdminToken))
	// Deleting a missing key stays a no-op.
	require.NoError(t, store.Delete(ctx, KeyAdminToken))

	var token string
	found, err := store.Load(ctx, KeyAdminToken, &token)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, KeyCart, []CartRecord{{ProductID: 1, Quantity: 1}}))
	require.NoError(t, store.Save(ctx, KeyCart, []CartRecord{{ProductID: 2, Quantity: 5}}))

	var loaded []CartRecord
	found, err := store.Load(ctx, KeyCart, &loaded)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, loaded, 1)
	assert.Equal(t, int64(2), loaded[0].ProductID)
}
