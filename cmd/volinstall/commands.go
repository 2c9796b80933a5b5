package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/f-s-p/volinstall/pkg/bundle"
	"github.com/f-s-p/volinstall/pkg/config"
	"github.com/f-s-p/volinstall/pkg/installer"
	"github.com/f-s-p/volinstall/pkg/tui"
	"github.com/f-s-p/volinstall/pkg/volume"
)

// timeRound keeps printed durations readable.
const timeRound = 10 * time.Millisecond

// configFlags are the flags shared by commands that resolve a Config.
type configFlags struct {
	envFile    string
	volumeName string
	pattern    string
	installer  string
	target     string
	legacyExit bool
}

// register adds the shared config flags to a command.
func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envFile, "config", config.EnvFileName, "Path to the env config file")
	cmd.Flags().StringVar(&f.volumeName, "volume", "", "Volume name or absolute mount path")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "Bundle glob pattern (e.g. '**/*.pkg')")
	cmd.Flags().StringVar(&f.installer, "installer", "", "Installer utility to invoke")
	cmd.Flags().StringVar(&f.target, "target", "", "Filesystem the installer targets")
	cmd.Flags().BoolVar(&f.legacyExit, "legacy-exit", false, "Exit 0 even when individual bundle installs fail")
}

// resolve builds the Config: defaults, env file, environment, then flags.
func (f *configFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f.volumeName != "" {
		cfg.VolumeName = f.volumeName
	}
	if f.pattern != "" {
		cfg.BundlePattern = f.pattern
	}
	if f.installer != "" {
		cfg.InstallerPath = f.installer
	}
	if f.target != "" {
		cfg.Target = f.target
	}
	if cmd.Flags().Changed("legacy-exit") {
		cfg.LegacyExit = f.legacyExit
	}

	return cfg, nil
}

// newInstallCmd creates the install subcommand
func newInstallCmd() *cobra.Command {
	flags := &configFlags{}
	var yes, interactive, dryRun bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install every package bundle on the volume",
		Long: `Check privileges, locate the installation volume, and invoke the
platform installer on every package bundle found there.

The privilege and volume checks fail fast; bundle installs always run to
completion. With --legacy-exit, individual bundle failures are reported but
do not affect the exit status.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runInstall(cmd, cfg, yes, interactive, dryRun)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Show interactive progress")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report installer commands without running them")

	return cmd
}

// newListCmd creates the list subcommand
func newListCmd() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List package bundles on the volume",
		Long:  `Locate the installation volume and list the package bundles found there without installing anything.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runList(cfg)
		},
	}

	flags.register(cmd)
	return cmd
}

// runInstall executes the install run.
func runInstall(cmd *cobra.Command, cfg *config.Config, yes, interactive, dryRun bool) error {
	if !yes && !dryRun {
		confirmed, err := tui.ConfirmInstall(cfg.VolumePath(), cfg.Target)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	runner := installer.NewRunner(cfg)
	runner.SetDryRun(dryRun)

	var report *installer.Report
	var err error

	if interactive {
		report, err = tui.RunInstall(cmd.Context(), runner)
	} else {
		report, err = runner.Run(cmd.Context(), printProgress)
	}
	if err != nil {
		return err
	}

	printReport(report, dryRun)

	if installErr := report.Err(); installErr != nil {
		if cfg.LegacyExit {
			fmt.Println(tui.WarningStyle.Render("Ignoring bundle failures (legacy exit mode)."))
			return nil
		}
		return installErr
	}

	return nil
}

// printProgress renders progress events as styled lines.
func printProgress(ev installer.ProgressEvent) {
	switch {
	case ev.IsError:
		fmt.Println(tui.ErrorStyle.Render(ev.Message))
	case ev.Stage == installer.StageComplete:
		fmt.Println(tui.SuccessStyle.Render(ev.Message))
	default:
		fmt.Println(ev.Message)
	}
}

// printReport prints the run summary.
func printReport(report *installer.Report, dryRun bool) {
	fmt.Println("\nInstall Summary:")
	fmt.Printf("  Run:       %s\n", report.RunID)
	fmt.Printf("  Volume:    %s\n", report.Volume)
	fmt.Printf("  Target:    %s\n", report.Target)
	if dryRun {
		fmt.Printf("  Bundles:   %d (dry run, nothing installed)\n", report.Attempted())
	} else {
		fmt.Printf("  Bundles:   %d attempted, %d failed\n", report.Attempted(), len(report.Failed()))
	}
	fmt.Printf("  Duration:  %s\n", report.Duration.Round(timeRound))

	for _, res := range report.Failed() {
		fmt.Println(tui.WarningStyle.Render(fmt.Sprintf("  failed: %s: %v", res.Bundle.Name, res.Err)))
	}
}

// runList lists bundles on the volume.
func runList(cfg *config.Config) error {
	locator := volume.NewLocator()
	volumePath, err := locator.Locate(cfg.VolumePath())
	if err != nil {
		return err
	}

	set, err := bundle.Discover(volumePath, cfg.BundlePattern)
	if err != nil {
		return err
	}

	if set.Len() == 0 {
		fmt.Printf("No package bundles matching %s on %s.\n", cfg.BundlePattern, volumePath)
		return nil
	}

	fmt.Printf("Found %d bundle(s) on %s:\n\n", set.Len(), volumePath)
	for _, b := range set.Bundles {
		fmt.Printf("  - %s (%s)\n", b.Name, humanSize(b.Size))
	}
	fmt.Printf("\nTotal: %s\n", humanSize(set.TotalSize()))

	return nil
}

// humanSize formats a byte count for display.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
