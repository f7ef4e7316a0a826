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

func TestWatchDeliversReloadedCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultListingFilename)
	require.NoError(t, os.WriteFile(path, []byte("datasets: []\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`
datasets:
  - id: 3dclouds
    path: ./3dclouds/
`), 0o644))

	select {
	case c := <-updates:
		require.NotNil(t, c)
		assert.Equal(t, 1, c.Len())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for catalog reload")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultListingFilename)
	require.NoError(t, os.WriteFile(path, []byte("datasets: []\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-updates:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
