// Package main provides the volinstall CLI tool for installing package
// bundles from a mounted installation volume.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for volinstall
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "volinstall",
		Short: "Volume package installer",
		Long: `volinstall locates a mounted installation volume and installs every
package bundle found on it, escalating privileges first.

It supports:
  - Installing all package bundles from a configured volume
  - Listing discovered bundles without installing
  - Environment diagnosis with suggested fixes
  - Authoring the development sandbox VM manifests`,
		Version: version,
	}

	rootCmd.AddCommand(
		newInstallCmd(),
		newListCmd(),
		newDoctorCmd(),
		newSandboxCmd(),
	)

	return rootCmd
}
