package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover recursively enumerates files under root matching the given glob
// pattern (e.g., "**/*.pkg") and returns them as a Set. Enumeration order
// is filesystem order.
func Discover(root, pattern string) (*Set, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid bundle pattern: %s", pattern)
	}

	fsys := os.DirFS(root)
	set := &Set{}

	err := doublestar.GlobWalk(fsys, pattern, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// Entry vanished between listing and stat; skip it
			return nil
		}

		set.add(filepath.Join(root, path), info.Size())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return set, nil
}
