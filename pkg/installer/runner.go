package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/f-s-p/volinstall/pkg/bundle"
	"github.com/f-s-p/volinstall/pkg/config"
	"github.com/f-s-p/volinstall/pkg/privilege"
	"github.com/f-s-p/volinstall/pkg/volume"
)

// PrivilegeChecker verifies the process can act with elevated rights.
type PrivilegeChecker interface {
	Ensure(ctx context.Context) error
}

// VolumeLocator checks the installation volume is mounted.
type VolumeLocator interface {
	Locate(path string) (string, error)
}

// DiscoverFunc enumerates bundles under a volume path.
type DiscoverFunc func(root, pattern string) (*bundle.Set, error)

// Runner executes the strictly linear install run: check privileges, locate
// the volume, then install every discovered bundle. The first two steps are
// fail-fast; the install loop attempts every bundle.
type Runner struct {
	cfg      *config.Config
	priv     PrivilegeChecker
	locator  VolumeLocator
	discover DiscoverFunc
	driver   *Driver
}

// NewRunner creates a Runner backed by the real system.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		cfg:      cfg,
		priv:     privilege.NewChecker(),
		locator:  volume.NewLocator(),
		discover: bundle.Discover,
		driver:   NewDriver(cfg.InstallerPath, cfg.Target),
	}
}

// NewRunnerWith creates a Runner with custom collaborators (for testing).
func NewRunnerWith(cfg *config.Config, priv PrivilegeChecker, locator VolumeLocator, discover DiscoverFunc, driver *Driver) *Runner {
	return &Runner{
		cfg:      cfg,
		priv:     priv,
		locator:  locator,
		discover: discover,
		driver:   driver,
	}
}

// SetDryRun makes the run report installer commands without executing them.
func (r *Runner) SetDryRun(v bool) {
	r.driver.SetDryRun(v)
}

// Run executes the install run. A non-nil error means a structural
// precondition failed (privileges or volume) or the context was cancelled;
// per-bundle failures live in the report and surface through Report.Err.
func (r *Runner) Run(ctx context.Context, progress ProgressCallback) (*Report, error) {
	if progress == nil {
		progress = NopProgress
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Volume:  r.cfg.VolumePath(),
		Target:  r.cfg.Target,
		Started: time.Now(),
	}
	defer func() {
		report.Duration = time.Since(report.Started)
	}()

	// Step 1: privileges
	progress(newEvent(StagePrivileges, "Checking privileges...", 5))
	if err := r.priv.Ensure(ctx); err != nil {
		progress(newErrorEvent(StageError, err.Error()))
		return report, err
	}

	// Step 2: volume
	progress(newEvent(StageVolume, fmt.Sprintf("Locating volume %s...", report.Volume), 20))
	volumePath, err := r.locator.Locate(report.Volume)
	if err != nil {
		progress(newErrorEvent(StageError, err.Error()))
		return report, err
	}

	// Step 3: discover and install everything
	progress(newEvent(StageDiscovering,
		fmt.Sprintf("Scanning for %s...", r.cfg.BundlePattern), 30))
	set, err := r.discover(volumePath, r.cfg.BundlePattern)
	if err != nil {
		progress(newErrorEvent(StageError, err.Error()))
		return report, err
	}

	if set.Len() == 0 {
		progress(newEvent(StageComplete, "No package bundles found; nothing to install", 100))
		return report, nil
	}

	if err := r.driver.Install(ctx, set, report, progress); err != nil {
		progress(newErrorEvent(StageError, err.Error()))
		return report, err
	}

	failed := len(report.Failed())
	if failed > 0 {
		progress(newEvent(StageComplete,
			fmt.Sprintf("Finished: %d installed, %d failed", report.Attempted()-failed, failed), 100))
	} else {
		progress(newEvent(StageComplete,
			fmt.Sprintf("Installed %d bundle(s)", report.Attempted()), 100))
	}

	return report, nil
}
