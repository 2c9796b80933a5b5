package doctor

import (
	"bytes"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
)

// CommandExecutor is an interface for executing commands, allowing for testing.
type CommandExecutor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) (string, error)
	FileExists(path string) bool
}

// RealExecutor is the default command executor that uses the real system.
type RealExecutor struct{}

// LookPath finds the path to an executable.
func (e *RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *RealExecutor) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		// Some tools output version to stderr
		if stderr.Len() > 0 {
			return stderr.String(), err
		}
		return stdout.String(), err
	}
	output := stdout.String()
	if output == "" {
		output = stderr.String()
	}
	return output, nil
}

// FileExists checks if a file exists.
func (e *RealExecutor) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// extractVersion extracts version string from command output.
func extractVersion(output string, regex *regexp.Regexp) string {
	if regex == nil {
		defaultRegex := regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9]+)?)`)
		matches := defaultRegex.FindStringSubmatch(output)
		if len(matches) >= 2 {
			return matches[1]
		}
		return ""
	}

	matches := regex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// CheckSudo checks if sudo is installed.
func CheckSudo(exec CommandExecutor) Check {
	check := Check{
		ID:          IDSudo,
		Name:        "sudo",
		Description: "Privilege elevation primitive",
		FixCommand:  GetFixCommand(IDSudo, runtime.GOOS),
	}

	path, err := exec.LookPath("sudo")
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	output, err := exec.Run(path, "--version")
	if err != nil {
		check.Status = StatusOK
		check.Message = "installed (version unknown)"
		return check
	}

	version := extractVersion(output, regexp.MustCompile(`Sudo version (\d+\.\d+(?:\.\d+)?(?:p\d+)?)`))
	if version != "" {
		check.Status = StatusOK
		check.Message = version
	} else {
		check.Status = StatusOK
		check.Message = "installed"
	}

	return check
}

// CheckElevation checks whether elevated rights are available without a
// password prompt. An install run refuses to start without them, so a
// failed probe is a missing requirement, not a warning.
func CheckElevation(exec CommandExecutor, euid int) Check {
	check := Check{
		ID:          IDElevation,
		Name:        "Elevation",
		Description: "Non-interactive administrative rights",
		FixCommand:  GetFixCommand(IDElevation, runtime.GOOS),
	}

	if euid == 0 {
		check.Status = StatusOK
		check.Message = "running as root"
		return check
	}

	path, err := exec.LookPath("sudo")
	if err != nil {
		check.Status = StatusMissing
		check.Message = "sudo not installed"
		return check
	}

	output, err := exec.Run(path, "-n", "true")
	if err != nil {
		check.Status = StatusMissing
		msg := strings.TrimSpace(output)
		if msg == "" {
			msg = "sudo requires a password"
		}
		check.Message = msg
		return check
	}

	check.Status = StatusOK
	check.Message = "sudo available without password"
	return check
}

// CheckInstallerUtility checks the platform installer utility is present.
func CheckInstallerUtility(exec CommandExecutor, installerPath string) Check {
	check := Check{
		ID:          IDInstaller,
		Name:        "Installer utility",
		Description: "OS-native package installer",
	}

	if runtime.GOOS != "darwin" {
		check.Status = StatusWarning
		check.Message = "the installer utility is only available on macOS"
		return check
	}

	path, err := exec.LookPath(installerPath)
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not found on PATH"
		return check
	}

	check.Status = StatusOK
	check.Message = path
	return check
}

// CheckMountRoot checks the volume mount root directory exists.
func CheckMountRoot(exec CommandExecutor, mountRoot string) Check {
	check := Check{
		ID:          IDMountRoot,
		Name:        "Mount root",
		Description: "Directory where installation volumes appear",
	}

	if !exec.FileExists(mountRoot) {
		check.Status = StatusMissing
		check.Message = mountRoot + " does not exist"
		return check
	}

	check.Status = StatusOK
	check.Message = mountRoot
	return check
}

// CheckVolume checks the configured installation volume is mounted.
func CheckVolume(exec CommandExecutor, volumePath string) Check {
	check := Check{
		ID:          IDVolume,
		Name:        "Installation volume",
		Description: "Mounted volume holding package bundles",
	}

	if volumePath == "" {
		check.Status = StatusError
		check.Message = "no volume configured"
		return check
	}

	if !exec.FileExists(volumePath) {
		check.Status = StatusMissing
		check.Message = volumePath + " is not mounted"
		return check
	}

	check.Status = StatusOK
	check.Message = volumePath
	return check
}
