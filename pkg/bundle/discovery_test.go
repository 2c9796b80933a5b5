package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with content under dir, creating parents.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDiscover(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.pkg", "aa")
	writeFile(t, tmpDir, "b.pkg", "bbbb")
	writeFile(t, tmpDir, "README.txt", "not a bundle")

	set, err := Discover(tmpDir, "**/*.pkg")
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.ElementsMatch(t, []string{"a.pkg", "b.pkg"}, set.Names())
	assert.Equal(t, int64(6), set.TotalSize())
}

func TestDiscover_Recursive(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "top.pkg", "x")
	nested := writeFile(t, tmpDir, filepath.Join("extras", "deps", "nested.pkg"), "y")
	writeFile(t, tmpDir, filepath.Join("extras", "notes.md"), "z")

	set, err := Discover(tmpDir, "**/*.pkg")
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Contains(t, set.Paths(), nested)
}

func TestDiscover_Empty(t *testing.T) {
	set, err := Discover(t.TempDir(), "**/*.pkg")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Names())
}

func TestDiscover_DirectoryNamedLikeBundle(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "fake.pkg"), 0755))
	writeFile(t, tmpDir, "real.pkg", "x")

	set, err := Discover(tmpDir, "**/*.pkg")
	require.NoError(t, err)

	// Only regular files count as bundles
	assert.Equal(t, []string{"real.pkg"}, set.Names())
}

func TestDiscover_InvalidPattern(t *testing.T) {
	_, err := Discover(t.TempDir(), "[")
	require.Error(t, err)
}
