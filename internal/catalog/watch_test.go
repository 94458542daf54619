package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchCatalogV1 = `{"categories": [{"id": "grocery", "items": [{"id": "chips", "price": 50}]}]}`
const watchCatalogV2 = `{"categories": [{"id": "grocery", "items": [{"id": "chips", "price": 60}]}]}`

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(watchCatalogV1), 0o644))

	first, err := Load(path)
	require.NoError(t, err)
	store := NewStore(first)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, store)
	}()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(watchCatalogV2), 0o644))

	assert.Eventually(t, func() bool {
		item, err := store.Catalog().ResolveItem("grocery", "chips")
		return err == nil && item.Price == 60
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatch_KeepsSnapshotOnBrokenReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(watchCatalogV1), 0o644))

	first, err := Load(path)
	require.NoError(t, err)
	store := NewStore(first)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, store)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"categories": [`), 0o644))
	time.Sleep(300 * time.Millisecond)

	item, err := store.Catalog().ResolveItem("grocery", "chips")
	require.NoError(t, err)
	assert.Equal(t, int64(50), item.Price)

	cancel()
	assert.NoError(t, <-done)
}
