package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConfigSettings(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, "config", "get", "--settings-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "ghost: on\ninspector: off\n", out)

	out, _, err = run(t, "config", "set", "ghost", "off", "--settings-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "ghost is now off\n", out)

	out, _, err = run(t, "config", "get", "ghost", "--settings-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "ghost: off\n", out)

	_, _, err = run(t, "config", "set", "volume", "on", "--settings-dir", dir)
	assert.Error(t, err)
	_, _, err = run(t, "config", "set", "ghost", "--settings-dir", dir)
	assert.Error(t, err, "value is required")
}

func TestConfigDump(t *testing.T) {
	out, _, err := run(t, "config", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "rows: 20\n")
	assert.Contains(t, out, "columns: 10\n")
	assert.Contains(t, out, "randomizer: uniform\n")
	assert.NotContains(t, out, "seed:")

	out, _, err = run(t, "config", "dump", "--rows", "12", "--seed", "42", "--randomizer", "bag")
	require.NoError(t, err)
	assert.Contains(t, out, "rows: 12\n")
	assert.Contains(t, out, "seed: 42\n")
	assert.Contains(t, out, "randomizer: bag\n")
}

func TestConfigEnvironment(t *testing.T) {
	t.Setenv("BLOCKFALL_COLUMNS", "8")

	out, _, err := run(t, "config", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "columns: 8\n")

	out, _, err = run(t, "config", "dump", "--columns", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "columns: 6\n", "flags win over the environment")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 16\nrandomizer: bag\n"), 0o644))

	out, _, err := run(t, "config", "dump", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "rows: 16\n")
	assert.Contains(t, out, "randomizer: bag\n")

	out, _, err = run(t, "config", "dump", "--config", path, "--rows", "18")
	require.NoError(t, err)
	assert.Contains(t, out, "rows: 18\n")

	_, _, err = run(t, "config", "dump", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInvalidEngineConfig(t *testing.T) {
	_, _, err := run(t, "config", "dump", "--rows", "2")
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)

	_, _, err = run(t, "soak", "--randomizer", "lottery")
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestSoak(t *testing.T) {
	out, errOut, err := run(t, "soak", "--games", "2", "--duration", "5s", "--workers", "2", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "# Soak Report")
	assert.Contains(t, out, "- **Base Seed:** 3")
	assert.Contains(t, errOut, "soaking 2 games")
	assert.Contains(t, errOut, "2 games in ")

	report := filepath.Join(t.TempDir(), "soak.md")
	out, _, err = run(t, "soak", "--games", "1", "--duration", "1s", "-o", report)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Line Clears")
}
