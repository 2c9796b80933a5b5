// Package config handles configuration for the volume installer.
package config

import (
	"path/filepath"
)

// Default values used when no env file, environment variable, or flag
// overrides them.
const (
	DefaultVolumeName    = "log2timeline"
	DefaultMountRoot     = "/Volumes"
	DefaultBundlePattern = "**/*.pkg"
	DefaultInstallerPath = "installer"
	DefaultTarget        = "/"

	// EnvFileName is the optional env file consulted next to the working
	// directory.
	EnvFileName = "volinstall.env"
)

// Config holds all settings for an installer run.
type Config struct {
	// VolumeName is the name of the installation volume under MountRoot,
	// or an absolute mount path used verbatim.
	VolumeName string

	// MountRoot is the directory where installation volumes appear.
	MountRoot string

	// BundlePattern is the glob matched against files under the volume.
	BundlePattern string

	// InstallerPath is the platform installer utility to invoke.
	InstallerPath string

	// Target is the filesystem the installer utility installs onto.
	Target string

	// LegacyExit preserves the original always-success exit behavior:
	// individual bundle failures are reported but do not fail the run.
	LegacyExit bool
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		VolumeName:    DefaultVolumeName,
		MountRoot:     DefaultMountRoot,
		BundlePattern: DefaultBundlePattern,
		InstallerPath: DefaultInstallerPath,
		Target:        DefaultTarget,
	}
}

// VolumePath resolves the configured volume to a mount path. An absolute
// VolumeName is used as-is; otherwise it is joined under MountRoot.
func (c *Config) VolumePath() string {
	if filepath.IsAbs(c.VolumeName) {
		return c.VolumeName
	}
	return filepath.Join(c.MountRoot, c.VolumeName)
}
