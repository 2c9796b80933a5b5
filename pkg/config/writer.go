package config

import (
	"fmt"
	"os"
	"strings"
)

// WriteEnvFile writes the config as a commented env file at path.
// Existing files are overwritten.
func WriteEnvFile(cfg *Config, path string) error {
	var b strings.Builder

	b.WriteString("# volinstall configuration\n")
	b.WriteString("# Values here are overridden by VOLINSTALL_* environment variables and flags.\n\n")

	b.WriteString("# Name of the installation volume under the mount root,\n")
	b.WriteString("# or an absolute mount path.\n")
	fmt.Fprintf(&b, "%s=%q\n\n", EnvVolume, cfg.VolumeName)

	b.WriteString("# Directory where installation volumes appear.\n")
	fmt.Fprintf(&b, "%s=%q\n\n", EnvMountRoot, cfg.MountRoot)

	b.WriteString("# Glob matched against files under the volume.\n")
	fmt.Fprintf(&b, "%s=%q\n\n", EnvPattern, cfg.BundlePattern)

	b.WriteString("# Platform installer utility and install target.\n")
	fmt.Fprintf(&b, "%s=%q\n", EnvInstaller, cfg.InstallerPath)
	fmt.Fprintf(&b, "%s=%q\n\n", EnvTarget, cfg.Target)

	b.WriteString("# Preserve the historical always-success exit status even when\n")
	b.WriteString("# individual bundle installs fail.\n")
	fmt.Fprintf(&b, "%s=%t\n", EnvLegacyExit, cfg.LegacyExit)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}

	return nil
}
