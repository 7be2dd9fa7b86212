package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
	return root
}

func TestFindFilesByExtension(t *testing.T) {
	root := writeTree(t, "b.hcl", "a.hcl", "nested/c.hcl", "readme.md")

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestCollectFiles(t *testing.T) {
	root := writeTree(t, "a.hcl", "b.hcl", "notes.txt")
	single := filepath.Join(root, "b.hcl")

	files, err := CollectFiles([]string{single, root, filepath.Join(root, "notes.txt")}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{single, filepath.Join(root, "a.hcl")}, files)

	_, err = CollectFiles([]string{filepath.Join(root, "missing")}, ".hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
