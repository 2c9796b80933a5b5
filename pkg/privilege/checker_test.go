package privilege

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdentity implements Identity for tests.
type fakeIdentity struct {
	euid int
	env  map[string]string
}

func (f *fakeIdentity) Geteuid() int { return f.euid }

func (f *fakeIdentity) Getenv(key string) string { return f.env[key] }

// fakeExecutor implements CommandExecutor and records invocations.
type fakeExecutor struct {
	lookPathErr error
	runOutput   string
	runErr      error
	calls       [][]string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.runOutput, f.runErr
}

func TestEnsure_AlreadyRoot(t *testing.T) {
	exec := &fakeExecutor{}
	checker := NewCheckerWith(&fakeIdentity{euid: 0}, exec)

	err := checker.Ensure(context.Background())
	require.NoError(t, err)

	// No probe needed when already privileged
	assert.Empty(t, exec.calls)
}

func TestEnsure_ProbeSucceeds(t *testing.T) {
	exec := &fakeExecutor{}
	checker := NewCheckerWith(&fakeIdentity{euid: 501}, exec)

	err := checker.Ensure(context.Background())
	require.NoError(t, err)

	require.Len(t, exec.calls, 1)
	assert.Equal(t, []string{"/usr/bin/sudo", "-n", "true"}, exec.calls[0])
}

func TestEnsure_ProbeFails(t *testing.T) {
	exec := &fakeExecutor{
		runOutput: "sudo: a password is required",
		runErr:    errors.New("exit status 1"),
	}
	id := &fakeIdentity{euid: 501, env: map[string]string{"USER": "kristinn"}}
	checker := NewCheckerWith(id, exec)

	err := checker.Ensure(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrElevationUnavailable))
	assert.Contains(t, err.Error(), "kristinn")
	assert.Contains(t, err.Error(), "a password is required")
}

func TestEnsure_SudoMissing(t *testing.T) {
	exec := &fakeExecutor{lookPathErr: errors.New("executable file not found")}
	checker := NewCheckerWith(&fakeIdentity{euid: 501}, exec)

	err := checker.Ensure(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrElevationUnavailable))
	assert.Empty(t, exec.calls)
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"from USER", map[string]string{"USER": "alice"}, "alice"},
		{"SUDO_USER wins", map[string]string{"USER": "root", "SUDO_USER": "bob"}, "bob"},
		{"unset", map[string]string{}, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewCheckerWith(&fakeIdentity{env: tt.env}, &fakeExecutor{})
			assert.Equal(t, tt.want, checker.Username())
		})
	}
}
