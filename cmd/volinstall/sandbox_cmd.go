package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f-s-p/volinstall/pkg/sandbox"
	"github.com/f-s-p/volinstall/pkg/tui"
)

// newSandboxCmd creates the sandbox subcommand tree
func newSandboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Author development sandbox VM manifests",
		Long: `Manage the declarative sandbox VM manifests that accompany the
installer. Manifests are authored and validated only; running a VM is left
to the virtualization tool.`,
	}

	cmd.AddCommand(
		newSandboxListCmd(),
		newSandboxShowCmd(),
		newSandboxValidateCmd(),
		newSandboxRenderCmd(),
		newSandboxInitCmd(),
	)

	return cmd
}

func newSandboxListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in sandbox manifests",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println("Built-in sandbox manifests:")
			for _, m := range sandbox.Builtins() {
				fmt.Printf("  - %s: %s, %d MB, %d package(s)\n",
					m.Name, m.Box, m.MemoryMB, len(m.Provision.Packages))
			}
			return nil
		},
	}
}

func newSandboxShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name-or-file>",
		Short: "Print a sandbox manifest as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := resolveManifest(args[0])
			if err != nil {
				return err
			}

			data, err := m.YAML()
			if err != nil {
				return err
			}

			fmt.Print(string(data))
			return nil
		},
	}
}

func newSandboxValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate sandbox manifest files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var failures int
			for _, path := range args {
				m, err := sandbox.Load(path)
				if err == nil {
					err = m.Validate()
				}

				if err != nil {
					failures++
					fmt.Println(tui.ErrorStyle.Render(fmt.Sprintf("✗ %s: %v", path, err)))
					continue
				}
				fmt.Printf("%s %s\n", tui.SuccessStyle.Render("✓"), path)
			}

			if failures > 0 {
				return fmt.Errorf("%d manifest(s) failed validation", failures)
			}
			return nil
		},
	}
}

func newSandboxRenderCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "render <name-or-file>",
		Short: "Render a sandbox manifest to a Vagrantfile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := resolveManifest(args[0])
			if err != nil {
				return err
			}

			out, err := m.Render()
			if err != nil {
				return err
			}

			if outputPath == "" {
				fmt.Print(out)
				return nil
			}

			if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			fmt.Printf("Wrote %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the Vagrantfile here instead of stdout")
	return cmd
}

func newSandboxInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write the built-in manifests as yaml files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "sandbox"
			if len(args) == 1 {
				dir = args[0]
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}

			for _, m := range sandbox.Builtins() {
				path := filepath.Join(dir, m.Name+".yaml")
				if err := m.Write(path); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", path)
			}
			return nil
		},
	}
}

// resolveManifest accepts either a built-in manifest name or a yaml file
// path.
func resolveManifest(arg string) (*sandbox.Manifest, error) {
	if !strings.ContainsAny(arg, "/.") {
		if m := sandbox.Builtin(arg); m != nil {
			return m, nil
		}
		return nil, fmt.Errorf("unknown sandbox manifest %q (built-ins: %s)",
			arg, strings.Join(sandbox.BuiltinNames(), ", "))
	}
	return sandbox.Load(arg)
}
