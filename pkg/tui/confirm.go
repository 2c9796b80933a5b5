package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// ConfirmInstall prompts before mutating the host. Installing packages is
// irreversible, so the default answer is no.
func ConfirmInstall(volumePath, target string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Install all package bundles from %s?", volumePath)).
				Description(fmt.Sprintf("Packages will be installed onto %s. This cannot be undone.", target)).
				Affirmative("Yes, install").
				Negative("No, cancel").
				Value(&confirmed),
		),
	).WithTheme(Theme())

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}

	return confirmed, nil
}
