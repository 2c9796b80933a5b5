package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/f-s-p/volinstall/pkg/doctor"
	"github.com/f-s-p/volinstall/pkg/tui"
)

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd() *cobra.Command {
	flags := &configFlags{}
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment for install requirements",
		Long: `Verify the host satisfies everything an install run needs: privilege
elevation, the platform installer utility, and the installation volume.
Missing requirements come with suggested fix commands; --fix runs them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runDoctor(cfg.InstallerPath, cfg.MountRoot, cfg.VolumePath(), fix)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&fix, "fix", false, "Run available fix commands for missing requirements")

	return cmd
}

// runDoctor runs all environment checks and prints the results.
func runDoctor(installerPath, mountRoot, volumePath string, fix bool) error {
	checker := doctor.NewChecker()
	checker.SetInstallerPath(installerPath)
	checker.SetMountRoot(mountRoot)
	checker.SetVolumePath(volumePath)

	groups := checker.CheckAll()

	for gi := range groups {
		group := &groups[gi]
		fmt.Println(tui.TitleStyle.Render(group.Name))
		fmt.Println(tui.SubtitleStyle.Render("  " + group.Description))
		for ci := range group.Checks {
			check := group.Checks[ci]
			printCheck(check)

			if fix && check.Status == doctor.StatusMissing && check.FixCommand != nil {
				fmt.Printf("    running fix: %s\n", check.FixCommand.Command)
				if err := doctor.NewFixer().RunFix(check.FixCommand); err != nil {
					fmt.Println(tui.ErrorStyle.Render("    " + err.Error()))
					continue
				}
				// Re-run the check so the summary reflects the fix
				group.Checks[ci] = checker.GetCheck(check.ID)
				printCheck(group.Checks[ci])
			}
		}
		fmt.Println()
	}

	summary := checker.GetSummary(groups)
	fmt.Printf("%d check(s): %d ok, %d missing, %d warning(s), %d error(s)\n",
		summary.Total, summary.OK, summary.Missing, summary.Warnings, summary.Errors)

	if checker.HasIssues(groups) {
		return fmt.Errorf("environment is not ready for an install run")
	}

	fmt.Println(tui.SuccessStyle.Render("Environment is ready."))
	return nil
}

// printCheck prints a single check line with its status glyph.
func printCheck(check doctor.Check) {
	switch check.Status {
	case doctor.StatusOK:
		fmt.Printf("  %s %s: %s\n", tui.SuccessStyle.Render("✓"), check.Name, check.Message)
	case doctor.StatusWarning:
		fmt.Printf("  %s %s: %s\n", tui.WarningStyle.Render("!"), check.Name, check.Message)
	default:
		fmt.Printf("  %s %s: %s\n", tui.ErrorStyle.Render("✗"), check.Name, check.Message)
		if check.FixCommand != nil && check.FixCommand.Platform == runtime.GOOS {
			fmt.Printf("      fix: %s\n", check.FixCommand.Command)
		}
	}
}
