// Package volume locates the mounted installation volume.
package volume

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound indicates the expected mount path is absent. The volume is
// expected to pre-exist; there is no wait or poll.
var ErrNotFound = errors.New("installation volume not found")

// Locator checks that an installation volume is mounted.
type Locator struct {
	stat func(string) (fs.FileInfo, error)
}

// NewLocator creates a Locator backed by the real filesystem.
func NewLocator() *Locator {
	return &Locator{stat: os.Stat}
}

// NewLocatorWithStat creates a Locator with a custom stat function
// (for testing).
func NewLocatorWithStat(stat func(string) (fs.FileInfo, error)) *Locator {
	return &Locator{stat: stat}
}

// Locate performs a single synchronous existence check on path and returns
// it when present. The path must be a directory.
func (l *Locator) Locate(path string) (string, error) {
	info, err := l.stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s (is the volume mounted?)", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to check volume %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrNotFound, path)
	}
	return path, nil
}
