package doctor

import "os"

// Checker provides environment checking functionality.
type Checker struct {
	executor      CommandExecutor
	geteuid       func() int // Effective UID lookup, replaceable in tests
	installerPath string     // Installer utility to look up
	mountRoot     string     // Directory where volumes appear
	volumePath    string     // Resolved installation volume path
}

// NewChecker creates a new Checker with the real command executor.
func NewChecker() *Checker {
	return &Checker{
		executor: &RealExecutor{},
		geteuid:  os.Geteuid,
	}
}

// NewCheckerWithExecutor creates a new Checker with a custom executor (for testing).
func NewCheckerWithExecutor(exec CommandExecutor) *Checker {
	return &Checker{
		executor: exec,
		geteuid:  os.Geteuid,
	}
}

// SetInstallerPath sets the installer utility checked for.
func (c *Checker) SetInstallerPath(path string) {
	c.installerPath = path
}

// SetMountRoot sets the mount root directory checked for.
func (c *Checker) SetMountRoot(path string) {
	c.mountRoot = path
}

// SetVolumePath sets the installation volume path checked for.
func (c *Checker) SetVolumePath(path string) {
	c.volumePath = path
}

// CheckAll runs all checks and returns groups with results.
func (c *Checker) CheckAll() []CheckGroup {
	groups := GetGroups()
	var result []CheckGroup

	for _, group := range groups {
		result = append(result, c.CheckGroup(group.ID))
	}

	return result
}

// CheckGroup runs all checks for a specific group.
func (c *Checker) CheckGroup(groupID string) CheckGroup {
	def, ok := GetGroupDefinition(groupID)
	if !ok {
		return CheckGroup{
			ID:   groupID,
			Name: "Unknown",
		}
	}

	group := CheckGroup{
		ID:          groupID,
		Name:        def.Name,
		Description: def.Description,
		Platform:    def.Platform,
	}

	for _, checkID := range def.CheckIDs {
		group.Checks = append(group.Checks, c.runCheck(checkID))
	}

	return group
}

// runCheck runs a specific check by ID.
func (c *Checker) runCheck(checkID string) Check {
	switch checkID {
	case IDSudo:
		return CheckSudo(c.executor)
	case IDElevation:
		return CheckElevation(c.executor, c.geteuid())
	case IDInstaller:
		return CheckInstallerUtility(c.executor, c.installerPath)
	case IDMountRoot:
		return CheckMountRoot(c.executor, c.mountRoot)
	case IDVolume:
		return CheckVolume(c.executor, c.volumePath)
	default:
		return Check{
			ID:      checkID,
			Name:    checkID,
			Status:  StatusError,
			Message: "unknown check",
		}
	}
}

// GetCheck runs a single check by ID.
func (c *Checker) GetCheck(checkID string) Check {
	return c.runCheck(checkID)
}

// Summary represents an overall health summary.
type Summary struct {
	Total    int
	OK       int
	Missing  int
	Warnings int
	Errors   int
}

// GetSummary returns a summary of check results.
func (c *Checker) GetSummary(groups []CheckGroup) Summary {
	var summary Summary

	for _, group := range groups {
		for _, check := range group.Checks {
			summary.Total++
			switch check.Status {
			case StatusOK:
				summary.OK++
			case StatusMissing:
				summary.Missing++
			case StatusWarning:
				summary.Warnings++
			case StatusError:
				summary.Errors++
			}
		}
	}

	return summary
}

// HasIssues returns true if any checks have issues.
func (c *Checker) HasIssues(groups []CheckGroup) bool {
	summary := c.GetSummary(groups)
	return summary.Missing > 0 || summary.Errors > 0
}
