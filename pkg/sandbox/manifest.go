// Package sandbox models the development sandbox VM provisioning manifests
// that ship alongside the installer. Manifests are authored and validated
// here; running a VM is out of scope.
package sandbox

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SyncedFolder maps a host directory into the sandbox.
type SyncedFolder struct {
	Host  string `yaml:"host"`
	Guest string `yaml:"guest"`
}

// Provision describes what gets installed inside the sandbox.
type Provision struct {
	// Packages are apt package names installed during provisioning.
	Packages []string `yaml:"packages"`

	// Script is an optional inline shell script run after packages.
	Script string `yaml:"script,omitempty"`
}

// Manifest is a declarative sandbox VM definition.
type Manifest struct {
	Name         string        `yaml:"name"`
	Box          string        `yaml:"box"`
	MemoryMB     int           `yaml:"memory_mb"`
	CPUs         int           `yaml:"cpus,omitempty"`
	SyncedFolder *SyncedFolder `yaml:"synced_folder,omitempty"`
	Provision    Provision     `yaml:"provision"`
}

// Parse decodes a manifest from yaml.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Validate checks the manifest for structural problems.
func (m *Manifest) Validate() error {
	var problems []string

	if strings.TrimSpace(m.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(m.Box) == "" {
		problems = append(problems, "box is required")
	}
	if m.MemoryMB <= 0 {
		problems = append(problems, "memory_mb must be positive")
	}
	if m.CPUs < 0 {
		problems = append(problems, "cpus must not be negative")
	}

	seen := make(map[string]bool)
	for _, pkg := range m.Provision.Packages {
		if strings.TrimSpace(pkg) == "" {
			problems = append(problems, "provision contains an empty package name")
			continue
		}
		if seen[pkg] {
			problems = append(problems, fmt.Sprintf("duplicate package %q", pkg))
		}
		seen[pkg] = true
	}

	if m.SyncedFolder != nil {
		if m.SyncedFolder.Host == "" || m.SyncedFolder.Guest == "" {
			problems = append(problems, "synced_folder requires both host and guest")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid manifest %q: %s", m.Name, strings.Join(problems, "; "))
	}
	return nil
}

// YAML marshals the manifest.
func (m *Manifest) YAML() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}

// Write marshals the manifest to yaml at path.
func (m *Manifest) Write(path string) error {
	data, err := m.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// SortedPackages returns the provision package list in sorted order for
// stable output.
func (m *Manifest) SortedPackages() []string {
	pkgs := make([]string, len(m.Provision.Packages))
	copy(pkgs, m.Provision.Packages)
	sort.Strings(pkgs)
	return pkgs
}
