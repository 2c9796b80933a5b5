// Package installer drives the platform package installer over discovered
// bundles and orchestrates the full install run.
package installer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/f-s-p/volinstall/pkg/bundle"
)

// CommandExecutor is an interface for executing installer commands, allowing
// for testing.
type CommandExecutor interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// RealExecutor is the default command executor that uses the real system.
type RealExecutor struct{}

// Run executes a command and returns its combined output.
func (RealExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

// Driver invokes the platform installer utility once per bundle.
type Driver struct {
	executor      CommandExecutor
	installerPath string
	target        string
	dryRun        bool
}

// NewDriver creates a Driver that shells out to the given installer utility.
func NewDriver(installerPath, target string) *Driver {
	return &Driver{
		executor:      RealExecutor{},
		installerPath: installerPath,
		target:        target,
	}
}

// NewDriverWithExecutor creates a Driver with a custom executor
// (for testing).
func NewDriverWithExecutor(exec CommandExecutor, installerPath, target string) *Driver {
	return &Driver{
		executor:      exec,
		installerPath: installerPath,
		target:        target,
	}
}

// SetDryRun makes Install report commands without executing them.
func (d *Driver) SetDryRun(v bool) {
	d.dryRun = v
}

// command builds the installer invocation for a bundle.
func (d *Driver) command(b bundle.Bundle) []string {
	return []string{d.installerPath, "-pkg", b.Path, "-target", d.target}
}

// Install runs the installer utility over every bundle in the set,
// sequentially, appending one Result per bundle to the report. Individual
// failures never stop the loop; each installer invocation runs to completion
// before the next begins. Cancellation of ctx stops between bundles.
func (d *Driver) Install(ctx context.Context, set *bundle.Set, report *Report, progress ProgressCallback) error {
	total := set.Len()

	for i, b := range set.Bundles {
		if err := ctx.Err(); err != nil {
			return err
		}

		args := d.command(b)
		ev := newEvent(StageInstalling,
			fmt.Sprintf("Installing %s (%d/%d)...", b.Name, i+1, total),
			installPercent(i, total))
		ev.Command = strings.Join(args, " ")
		progress(ev)

		result := Result{Bundle: b}
		start := time.Now()

		if d.dryRun {
			result.Skipped = true
		} else {
			output, err := d.executor.Run(ctx, args[0], args[1:]...)
			result.Output = output
			result.Err = err
		}

		result.Duration = time.Since(start)
		report.Results = append(report.Results, result)

		if result.Err != nil {
			progress(newErrorEvent(StageInstalling,
				fmt.Sprintf("Failed to install %s: %v", b.Name, result.Err)))
		}
	}

	return nil
}

// installPercent maps bundle index to the 40-95 slice of the overall run.
func installPercent(i, total int) int {
	if total == 0 {
		return 95
	}
	return 40 + (55*i)/total
}
