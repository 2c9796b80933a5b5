package doctor

import "fmt"

// Platform constants.
const (
	PlatformDarwin = "darwin"
	PlatformLinux  = "linux"
)

// fixCommands defines platform-specific fix commands for each requirement.
// The installer utility and mount root ship with macOS and have no fix
// command; the volume check is fixed by inserting the installation media.
var fixCommands = map[string]map[string]*FixCommand{
	IDSudo: {
		PlatformLinux: {
			Description: "Install sudo via apt",
			Command:     "apt-get install -y sudo",
			Sudo:        true,
			Platform:    PlatformLinux,
		},
	},
	IDElevation: {
		PlatformDarwin: {
			Description: "Add the invoking user to the admin group",
			Command:     "sudo dseditgroup -o edit -a $USER -t user admin",
			Sudo:        true,
			Platform:    PlatformDarwin,
		},
		PlatformLinux: {
			Description: "Add the invoking user to the sudo group",
			Command:     "sudo usermod -aG sudo $USER",
			Sudo:        true,
			Platform:    PlatformLinux,
		},
	},
}

// GetFixCommand returns the fix command for a requirement on the given platform.
func GetFixCommand(checkID, platform string) *FixCommand {
	checkFixes, ok := fixCommands[checkID]
	if !ok {
		return nil
	}

	fix, ok := checkFixes[platform]
	if !ok {
		return nil
	}

	return fix
}

// Fixer provides functionality to run fix commands.
type Fixer struct {
	executor CommandExecutor
}

// NewFixer creates a new Fixer.
func NewFixer() *Fixer {
	return &Fixer{
		executor: &RealExecutor{},
	}
}

// NewFixerWithExecutor creates a new Fixer with a custom executor.
func NewFixerWithExecutor(exec CommandExecutor) *Fixer {
	return &Fixer{
		executor: exec,
	}
}

// RunFix executes a fix command through the shell.
func (f *Fixer) RunFix(fix *FixCommand) error {
	if fix == nil {
		return fmt.Errorf("no fix command available")
	}

	output, err := f.executor.Run("sh", "-c", fix.Command)
	if err != nil {
		return fmt.Errorf("fix failed: %w\nOutput: %s", err, output)
	}

	return nil
}
