// Package privilege determines whether the process can act with
// administrative rights, probing for elevation when it cannot.
package privilege

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// ErrElevationUnavailable indicates the process is not privileged and the
// elevation probe failed. The run must stop before touching the volume.
var ErrElevationUnavailable = errors.New("elevated privileges unavailable")

// Identity reports who the process is running as (allows testing).
type Identity interface {
	Geteuid() int
	Getenv(key string) string
}

// RealIdentity reads the real process identity.
type RealIdentity struct{}

// Geteuid returns the effective user ID.
func (RealIdentity) Geteuid() int {
	return os.Geteuid()
}

// Getenv gets an environment variable.
func (RealIdentity) Getenv(key string) string {
	return os.Getenv(key)
}

// CommandExecutor is an interface for executing commands, allowing for
// testing.
type CommandExecutor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// RealExecutor is the default command executor that uses the real system.
type RealExecutor struct{}

// LookPath finds the path to an executable.
func (RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its combined output.
func (RealExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}
