package privilege

import (
	"context"
	"fmt"
	"strings"
)

// sudoBinary is the elevation primitive probed when the process is not
// already privileged.
const sudoBinary = "sudo"

// Checker verifies administrative rights for the current process.
type Checker struct {
	identity Identity
	executor CommandExecutor
}

// NewChecker creates a Checker backed by the real system.
func NewChecker() *Checker {
	return &Checker{
		identity: RealIdentity{},
		executor: RealExecutor{},
	}
}

// NewCheckerWith creates a Checker with custom identity and executor
// (for testing).
func NewCheckerWith(id Identity, exec CommandExecutor) *Checker {
	return &Checker{
		identity: id,
		executor: exec,
	}
}

// Elevated reports whether the process already runs with administrative
// rights.
func (c *Checker) Elevated() bool {
	return c.identity.Geteuid() == 0
}

// Username returns the invoking user for messages. SUDO_USER takes
// precedence so the original identity survives an outer sudo.
func (c *Checker) Username() string {
	if user := c.identity.Getenv("SUDO_USER"); user != "" {
		return user
	}
	if user := c.identity.Getenv("USER"); user != "" {
		return user
	}
	return "unknown"
}

// Ensure verifies the process can act with administrative rights. If the
// process is not already privileged, it makes one non-interactive elevation
// probe with a side-effect-free command. There is no retry.
func (c *Checker) Ensure(ctx context.Context) error {
	if c.Elevated() {
		return nil
	}

	sudoPath, err := c.executor.LookPath(sudoBinary)
	if err != nil {
		return fmt.Errorf("%w: sudo not found for user %q", ErrElevationUnavailable, c.Username())
	}

	output, err := c.executor.Run(ctx, sudoPath, "-n", "true")
	if err != nil {
		msg := strings.TrimSpace(output)
		if msg != "" {
			return fmt.Errorf("%w: user %q: %s", ErrElevationUnavailable, c.Username(), msg)
		}
		return fmt.Errorf("%w: user %q", ErrElevationUnavailable, c.Username())
	}

	return nil
}
