package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintrender/internal/lint"
	"lintrender/internal/output"
	"lintrender/internal/render"
	"lintrender/internal/trace"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, defaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// renderCommand returns the parsed render subcommand of a fresh tree.
func renderCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	root := newRootCmd()
	cmd, rest, err := root.Find(append([]string{"render"}, args...))
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(rest))
	return cmd
}

func TestLoadConfigFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := loadConfigFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, fileConfig{}, cfg)

	_, err = loadConfigFile(path, true)
	assert.Error(t, err)
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\ncolour = \"on\"\n")
	_, err := loadConfigFile(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.colour")
}

func TestResolveSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[output]
color = "off"
format = "oneline"

[input]
format = "msgpack"
jobs = 2

[trace]
level = "file"
output = "trace.ndjson"
`)

	cmd := renderCommand(t, "--config", path)
	s, err := resolveSettings(cmd)
	require.NoError(t, err)
	assert.Equal(t, settings{
		Color:       output.ColorOff,
		Format:      render.FormatOneline,
		InputFormat: lint.FormatMsgpack,
		Jobs:        2,
		TraceLevel:  trace.LevelFile,
		TraceOutput: "trace.ndjson",
	}, s)
}

func TestResolveSettingsFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\ncolor = \"off\"\nformat = \"oneline\"\n[input]\njobs = 2\n")

	cmd := renderCommand(t, "--config", path, "--color", "on", "--format", "json", "--jobs", "5")
	s, err := resolveSettings(cmd)
	require.NoError(t, err)
	assert.Equal(t, output.ColorOn, s.Color)
	assert.Equal(t, render.FormatJSON, s.Format)
	assert.Equal(t, 5, s.Jobs)
}

func TestResolveSettingsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := resolveSettings(renderCommand(t))
	require.NoError(t, err)
	assert.Equal(t, output.ColorAuto, s.Color)
	assert.Equal(t, render.FormatDefault, s.Format)
	assert.Equal(t, lint.FormatAuto, s.InputFormat)
	assert.Equal(t, trace.LevelOff, s.TraceLevel)
	assert.Zero(t, s.Jobs)
}

func TestResolveSettingsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"color", []string{"--color", "rainbow"}},
		{"format", []string{"--format", "xml"}},
		{"input format", []string{"--input-format", "yaml"}},
		{"trace level", []string{"--trace-level", "loud"}},
		{"jobs", []string{"--jobs", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			_, err := resolveSettings(renderCommand(t, tt.args...))
			assert.Error(t, err)
		})
	}
}
