package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacofoundation/taco-datasets/pkg/project"
)

func writeProject(t *testing.T, root, id string) {
	t.Helper()
	dir := filepath.Join(root, id)
	require.NoError(t, project.Scaffold(dir, project.Descriptor{ID: id}))
}

func testCatalog(t *testing.T, root string) *Catalog {
	t.Helper()
	c, err := Parse([]byte(`
datasets:
  - id: 3dclouds
    path: ./3dclouds/
  - id: seafloor
    path: ./seafloor/
`), root)
	require.NoError(t, err)
	return c
}

func TestValidate(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "3dclouds")
	c := testCatalog(t, root)

	ctx := context.Background()

	t.Run("valid project", func(t *testing.T) {
		require.NoError(t, c.Validate(ctx, "3dclouds"))
	})

	t.Run("missing directory", func(t *testing.T) {
		err := c.Validate(ctx, "seafloor")
		var invalid *InvalidProjectError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "seafloor", invalid.ID)
		assert.Contains(t, invalid.Path, "seafloor")
		assert.Contains(t, invalid.Reason, "does not exist")
	})

	t.Run("unknown id", func(t *testing.T) {
		err := c.Validate(ctx, "nonexistent")
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestValidateMissingDescriptor(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "3dclouds"), 0o755))
	c := testCatalog(t, root)

	err := c.Validate(context.Background(), "3dclouds")
	var invalid *InvalidProjectError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, project.DescriptorFilename)
}

func TestValidateDescriptorIDMismatch(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "3dclouds")
	require.NoError(t, project.Scaffold(dir, project.Descriptor{ID: "something-else"}))
	c := testCatalog(t, root)

	err := c.Validate(context.Background(), "3dclouds")
	var invalid *InvalidProjectError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "something-else")
}

func TestValidatePathIsFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "3dclouds"), []byte("not a dir"), 0o644))
	c := testCatalog(t, root)

	err := c.Validate(context.Background(), "3dclouds")
	var invalid *InvalidProjectError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "not a directory", invalid.Reason)
}

func TestValidateAll(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "3dclouds")
	c := testCatalog(t, root)

	err := c.ValidateAll(context.Background())
	require.Error(t, err)

	// Only seafloor is broken; 3dclouds must not be reported.
	var invalid *InvalidProjectError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "seafloor", invalid.ID)
	assert.NotContains(t, err.Error(), "3dclouds")

	writeProject(t, root, "seafloor")
	require.NoError(t, c.ValidateAll(context.Background()))
}

func TestValidateAllEmptyCatalog(t *testing.T) {
	c, err := Parse([]byte("datasets: []\n"), t.TempDir())
	require.NoError(t, err)
	require.NoError(t, c.ValidateAll(context.Background()))
}
