package installer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f-s-p/volinstall/pkg/bundle"
	"github.com/f-s-p/volinstall/pkg/config"
	"github.com/f-s-p/volinstall/pkg/privilege"
	"github.com/f-s-p/volinstall/pkg/volume"
)

// fakeSteps records which steps of the run were reached.
type fakeSteps struct {
	privErr    error
	locateErr  error
	discovered *bundle.Set

	privCalled     bool
	locateCalled   bool
	discoverCalled bool
}

func (f *fakeSteps) Ensure(ctx context.Context) error {
	f.privCalled = true
	return f.privErr
}

func (f *fakeSteps) Locate(path string) (string, error) {
	f.locateCalled = true
	if f.locateErr != nil {
		return "", f.locateErr
	}
	return path, nil
}

func (f *fakeSteps) discover(root, pattern string) (*bundle.Set, error) {
	f.discoverCalled = true
	if f.discovered == nil {
		return &bundle.Set{}, nil
	}
	return f.discovered, nil
}

func newTestRunner(steps *fakeSteps, exec CommandExecutor) *Runner {
	cfg := config.Default()
	cfg.VolumeName = "TESTVOL"
	driver := NewDriverWithExecutor(exec, cfg.InstallerPath, cfg.Target)
	return NewRunnerWith(cfg, steps, steps, steps.discover, driver)
}

func TestRun_PrivilegeFailureStopsBeforeVolume(t *testing.T) {
	steps := &fakeSteps{privErr: privilege.ErrElevationUnavailable}
	exec := &fakeExecutor{}
	runner := newTestRunner(steps, exec)

	_, err := runner.Run(context.Background(), NopProgress)
	require.Error(t, err)
	assert.True(t, errors.Is(err, privilege.ErrElevationUnavailable))

	assert.True(t, steps.privCalled)
	assert.False(t, steps.locateCalled, "volume must not be checked after a privilege failure")
	assert.False(t, steps.discoverCalled)
	assert.Empty(t, exec.calls)
}

func TestRun_MissingVolumeStopsBeforeInstall(t *testing.T) {
	steps := &fakeSteps{locateErr: volume.ErrNotFound}
	exec := &fakeExecutor{}
	runner := newTestRunner(steps, exec)

	_, err := runner.Run(context.Background(), NopProgress)
	require.Error(t, err)
	assert.True(t, errors.Is(err, volume.ErrNotFound))

	assert.True(t, steps.locateCalled)
	assert.False(t, steps.discoverCalled)
	assert.Empty(t, exec.calls, "no package installation may be attempted")
}

func TestRun_EmptyVolumeSucceeds(t *testing.T) {
	steps := &fakeSteps{}
	exec := &fakeExecutor{}
	runner := newTestRunner(steps, exec)

	report, err := runner.Run(context.Background(), NopProgress)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Attempted())
	assert.NoError(t, report.Err())
	assert.Empty(t, exec.calls)
}

func TestRun_EndToEnd(t *testing.T) {
	steps := &fakeSteps{discovered: testSet("a.pkg", "b.pkg")}
	exec := &fakeExecutor{}
	runner := newTestRunner(steps, exec)

	var events []ProgressEvent
	report, err := runner.Run(context.Background(), func(ev ProgressEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)

	// Exactly one installer invocation per discovered bundle
	require.Len(t, exec.calls, 2)
	assert.Equal(t, []string{"installer", "-pkg", "/Volumes/TESTVOL/a.pkg", "-target", "/"}, exec.calls[0])
	assert.Equal(t, []string{"installer", "-pkg", "/Volumes/TESTVOL/b.pkg", "-target", "/"}, exec.calls[1])

	assert.Equal(t, 2, report.Attempted())
	assert.NoError(t, report.Err())
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "/Volumes/TESTVOL", report.Volume)

	require.NotEmpty(t, events)
	assert.Equal(t, StagePrivileges, events[0].Stage)
	assert.Equal(t, StageComplete, events[len(events)-1].Stage)
}

func TestRun_BundleFailuresDoNotFailTheRun(t *testing.T) {
	steps := &fakeSteps{discovered: testSet("a.pkg", "b.pkg")}
	exec := &fakeExecutor{
		failOn: map[string]error{"/Volumes/TESTVOL/a.pkg": errors.New("exit status 1")},
	}
	runner := newTestRunner(steps, exec)

	report, err := runner.Run(context.Background(), NopProgress)

	// Structural error stays nil; the failure lives in the report
	require.NoError(t, err)
	assert.Len(t, exec.calls, 2)
	assert.Len(t, report.Failed(), 1)
	assert.Error(t, report.Err())
}

func TestRun_Idempotent(t *testing.T) {
	for i := 0; i < 2; i++ {
		steps := &fakeSteps{discovered: testSet("a.pkg")}
		exec := &fakeExecutor{
			failOn: map[string]error{"/Volumes/TESTVOL/a.pkg": errors.New("exit status 1")},
		}
		runner := newTestRunner(steps, exec)

		report, err := runner.Run(context.Background(), NopProgress)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Attempted())
	}
}
