package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-01-02"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Contains(t, buf.String(), "todo 1.2.3")
	require.Contains(t, buf.String(), "abcdef1")
	require.Contains(t, buf.String(), "2026-01-02")
}

func TestThemesCommandListsPalette(t *testing.T) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"themes"})

	require.NoError(t, root.Execute())
	out := buf.String()
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "light")
	require.Contains(t, out, "bg-gray-900")
	require.Contains(t, out, "midnight")
}

func parsedFlags(t *testing.T, args ...string) (*cobra.Command, *rootFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "todo"}
	flags := &rootFlags{}
	bindFlags(cmd, flags)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, flags
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("todo.toml", []byte("theme = \"rose\"\nid_strategy = \"uuid\"\n"), 0o644))

	cmd, flags := parsedFlags(t, "--theme", "midnight", "--auto-contrast")
	cfg, err := loadConfig(cmd, flags)
	require.NoError(t, err)
	require.Equal(t, "midnight", cfg.Theme)
	require.True(t, cfg.AutoContrast)
	require.Equal(t, "uuid", cfg.IDStrategy)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigUnsetFlagsKeepFileValues(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("todo.toml", []byte("theme = \"rose\"\n"), 0o644))

	cmd, flags := parsedFlags(t)
	cfg, err := loadConfig(cmd, flags)
	require.NoError(t, err)
	require.Equal(t, "rose", cfg.Theme)
}

func TestLoadConfigRejectsUnknownTheme(t *testing.T) {
	chdir(t, t.TempDir())

	cmd, flags := parsedFlags(t, "--theme", "neon")
	_, err := loadConfig(cmd, flags)
	require.Error(t, err)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	cmd, flags := parsedFlags(t, "--config", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := loadConfig(cmd, flags)
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
