package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f-s-p/volinstall/pkg/sandbox"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()

	assert.Equal(t, "volinstall", rootCmd.Use)
	assert.Equal(t, "Volume package installer", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmdHelp(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "volinstall")
	assert.Contains(t, output, "install")
	assert.Contains(t, output, "list")
	assert.Contains(t, output, "doctor")
	assert.Contains(t, output, "sandbox")
}

func TestRootCmdVersion(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--version"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "volinstall version")
}

func TestListCmd_MissingVolume(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"list", "--volume", filepath.Join(t.TempDir(), "no-such-volume")})
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestInstallCmd(t *testing.T) {
	// The confirmation form requires an interactive TTY; the run itself is
	// covered in pkg/installer/runner_test.go
	t.Skip("install command requires interactive TTY")
}

func TestSandboxValidateCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, sandbox.Builtin("dev").Write(good))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: x\nbox: \"\"\nmemory_mb: 0\n"), 0644))

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sandbox", "validate", good})
	require.NoError(t, rootCmd.Execute())

	rootCmd = newRootCmd()
	rootCmd.SetArgs([]string{"sandbox", "validate", good, bad})
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 manifest(s) failed")
}

func TestSandboxRenderCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "Vagrantfile")

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sandbox", "render", "testing", "-o", out})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `config.vm.box = "ubuntu/trusty64"`)
}

func TestSandboxRenderCmd_UnknownName(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sandbox", "render", "nope"})
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sandbox manifest")
}

func TestResolveConfigFlags(t *testing.T) {
	cmd := newListCmd()

	flags := &configFlags{}
	flags.envFile = filepath.Join(t.TempDir(), "none.env")
	flags.volumeName = "TESTVOL"
	flags.pattern = "**/*.mpkg"

	cfg, err := flags.resolve(cmd)
	require.NoError(t, err)
	assert.Equal(t, "TESTVOL", cfg.VolumeName)
	assert.Equal(t, "**/*.mpkg", cfg.BundlePattern)
	assert.Equal(t, "/Volumes/TESTVOL", cfg.VolumePath())
}
