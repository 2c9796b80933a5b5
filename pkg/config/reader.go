package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Env variable names recognized by ApplyEnviron.
const (
	EnvVolume     = "VOLINSTALL_VOLUME"
	EnvMountRoot  = "VOLINSTALL_MOUNT_ROOT"
	EnvPattern    = "VOLINSTALL_PATTERN"
	EnvInstaller  = "VOLINSTALL_INSTALLER"
	EnvTarget     = "VOLINSTALL_TARGET"
	EnvLegacyExit = "VOLINSTALL_LEGACY_EXIT"
)

// Load resolves configuration in precedence order: defaults, then the env
// file at path (skipped if absent), then process environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			envVars, err := parseEnvFile(path)
			if err != nil {
				return nil, err
			}
			cfg.apply(func(key string) string { return envVars[key] })
		}
	}

	cfg.ApplyEnviron(os.Getenv)
	return cfg, nil
}

// ApplyEnviron overrides config fields from environment variables using the
// given lookup function.
func (c *Config) ApplyEnviron(getenv func(string) string) {
	c.apply(getenv)
}

func (c *Config) apply(lookup func(string) string) {
	c.VolumeName = getStringOrDefault(lookup, EnvVolume, c.VolumeName)
	c.MountRoot = getStringOrDefault(lookup, EnvMountRoot, c.MountRoot)
	c.BundlePattern = getStringOrDefault(lookup, EnvPattern, c.BundlePattern)
	c.InstallerPath = getStringOrDefault(lookup, EnvInstaller, c.InstallerPath)
	c.Target = getStringOrDefault(lookup, EnvTarget, c.Target)
	c.LegacyExit = getBoolOrDefault(lookup, EnvLegacyExit, c.LegacyExit)
}

// parseEnvFile parses a shell-style env file into key-value pairs. Files
// meant to be sourced may prefix assignments with "export"; that is
// tolerated so the same file works in both places.
func parseEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vars := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}

	return vars, sc.Err()
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') ||
			(s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// getStringOrDefault returns the looked-up value for key or a default if
// not present.
func getStringOrDefault(lookup func(string) string, key, defaultValue string) string {
	if value := lookup(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolOrDefault returns the boolean value for key or a default if not
// present or unparseable.
func getBoolOrDefault(lookup func(string) string, key string, defaultValue bool) bool {
	if value := lookup(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}
