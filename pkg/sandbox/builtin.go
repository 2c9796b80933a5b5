package sandbox

// Builtins returns the sandbox manifests shipped with the tool. The two
// manifests differ only in memory and the extra tooling the larger one
// carries for running the full test suite.
func Builtins() []*Manifest {
	return []*Manifest{
		{
			Name:     "dev",
			Box:      "ubuntu/trusty64",
			MemoryMB: 1024,
			CPUs:     1,
			SyncedFolder: &SyncedFolder{
				Host:  ".",
				Guest: "/vagrant",
			},
			Provision: Provision{
				Packages: []string{
					"build-essential",
					"git",
					"python-dev",
					"python-pip",
					"python-setuptools",
				},
			},
		},
		{
			Name:     "testing",
			Box:      "ubuntu/trusty64",
			MemoryMB: 4096,
			CPUs:     2,
			SyncedFolder: &SyncedFolder{
				Host:  ".",
				Guest: "/vagrant",
			},
			Provision: Provision{
				Packages: []string{
					"build-essential",
					"git",
					"python-coverage",
					"python-dev",
					"python-mock",
					"python-pip",
					"python-setuptools",
					"python-tox",
				},
				Script: "pip install --upgrade pip",
			},
		},
	}
}

// BuiltinNames returns the names of the built-in manifests.
func BuiltinNames() []string {
	builtins := Builtins()
	names := make([]string, len(builtins))
	for i, m := range builtins {
		names[i] = m.Name
	}
	return names
}

// Builtin returns the built-in manifest with the given name, or nil.
func Builtin(name string) *Manifest {
	for _, m := range Builtins() {
		if m.Name == name {
			return m
		}
	}
	return nil
}
