// Package bundle discovers installable package bundles on the installation
// volume.
package bundle

import "path/filepath"

// Bundle represents a single package-bundle file found on the volume.
type Bundle struct {
	// Name is the bundle file name (e.g., "plaso.pkg")
	Name string

	// Path is the absolute path to the bundle file
	Path string

	// Size is the file size in bytes
	Size int64
}

// Set holds discovered bundles in filesystem enumeration order. No ordering
// guarantee is made beyond what the filesystem returns.
type Set struct {
	Bundles []Bundle
}

// Len returns the number of bundles in the set.
func (s *Set) Len() int {
	return len(s.Bundles)
}

// Names returns the bundle file names.
func (s *Set) Names() []string {
	names := make([]string, len(s.Bundles))
	for i, b := range s.Bundles {
		names[i] = b.Name
	}
	return names
}

// Paths returns the bundle file paths.
func (s *Set) Paths() []string {
	paths := make([]string, len(s.Bundles))
	for i, b := range s.Bundles {
		paths[i] = b.Path
	}
	return paths
}

// TotalSize returns the combined size of all bundles in bytes.
func (s *Set) TotalSize() int64 {
	var total int64
	for _, b := range s.Bundles {
		total += b.Size
	}
	return total
}

// add appends a bundle built from path and size.
func (s *Set) add(path string, size int64) {
	s.Bundles = append(s.Bundles, Bundle{
		Name: filepath.Base(path),
		Path: path,
		Size: size,
	})
}
