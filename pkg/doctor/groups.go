package doctor

// groupDefinitions defines the check groups with their metadata.
var groupDefinitions = map[string]struct {
	Name        string
	Description string
	Platform    string
	CheckIDs    []string
}{
	GroupPrivileges: {
		Name:        "Privileges",
		Description: "Required to run the platform installer as root",
		Platform:    "", // sudo exists on both platforms
		CheckIDs:    []string{IDSudo, IDElevation},
	},
	GroupInstaller: {
		Name:        "Installer",
		Description: "The OS-native package installer utility",
		Platform:    "",
		CheckIDs:    []string{IDInstaller},
	},
	GroupVolume: {
		Name:        "Volume",
		Description: "The mounted installation volume holding package bundles",
		Platform:    "",
		CheckIDs:    []string{IDMountRoot, IDVolume},
	},
}

// groupOrder fixes the display order of groups.
var groupOrder = []string{GroupPrivileges, GroupInstaller, GroupVolume}

// GetGroups returns all check groups in display order.
func GetGroups() []CheckGroup {
	var groups []CheckGroup

	for _, groupID := range groupOrder {
		def := groupDefinitions[groupID]
		groups = append(groups, CheckGroup{
			ID:          groupID,
			Name:        def.Name,
			Description: def.Description,
			Platform:    def.Platform,
		})
	}

	return groups
}

// GetGroupDefinition returns the definition for a specific group.
func GetGroupDefinition(groupID string) (struct {
	Name        string
	Description string
	Platform    string
	CheckIDs    []string
}, bool) {
	def, ok := groupDefinitions[groupID]
	return def, ok
}
