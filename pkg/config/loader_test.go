package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/matrixlab/pkg/errors"
)

// isolate points XDG_CONFIG_HOME at an empty temp dir so a developer's own
// config never leaks into the tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// Registered first so it runs after Setenv restores the environment.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Display.Format)
	assert.Equal(t, 8, cfg.Display.CellWidth)
	assert.Equal(t, 14, cfg.Display.IndexWidth)
	assert.True(t, cfg.Display.ClearScreen)

	assert.Equal(t, Sums{MinSize: 5, MaxSize: 9, MinValue: 5, MaxValue: 10}, cfg.Sums)
	assert.Equal(t, ValueRange{MinValue: -50, MaxValue: 50, ExcludeZero: true, RandomSign: true}, cfg.Diagonals)
	assert.Equal(t, ValueRange{MinValue: 25, MaxValue: 75, ExcludeZero: true}, cfg.Sorting)
	assert.Equal(t, 1, cfg.Rotation.MinValue)
}

func TestLoadWithoutUserConfigMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoadUserTOMLFromXDG(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "matrixlab", "config.toml"), `
[display]
cell_width = 5

[sorting]
min_value = 1
max_value = 9
`)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Display.CellWidth)
	assert.Equal(t, 14, cfg.Display.IndexWidth, "untouched keys keep defaults")
	assert.Equal(t, 1, cfg.Sorting.MinValue)
	assert.Equal(t, 9, cfg.Sorting.MaxValue)
	assert.True(t, cfg.Sorting.ExcludeZero)
}

func TestLoadExplicitYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "lab.yaml")
	writeFile(t, path, `
display:
  format: text
diagonals:
  random_sign: false
`)

	cfg, err := Load(Options{Path: path})
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Display.Format)
	assert.False(t, cfg.Diagonals.RandomSign)
	assert.True(t, cfg.Diagonals.ExcludeZero)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "matrixlab", "config.toml"), `
[display]
cell_width = 5
`)
	t.Setenv("MATRIXLAB_DISPLAY__CELL_WIDTH", "6")
	t.Setenv("MATRIXLAB_DISPLAY__CLEAR_SCREEN", "false")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Display.CellWidth)
	assert.False(t, cfg.Display.ClearScreen)
}

func TestLoadOverridesWinOverEnv(t *testing.T) {
	isolate(t)
	t.Setenv("MATRIXLAB_DISPLAY__FORMAT", "text")

	cfg, err := Load(Options{Overrides: map[string]interface{}{
		"display.format": "json",
	}})
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Display.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing_explicit_file", func(t *testing.T) {
		isolate(t)
		_, err := Load(Options{Path: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_toml", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "bad.toml")
		writeFile(t, path, "[display\ncell_width = ")
		_, err := Load(Options{Path: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_values", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "invalid.toml")
		writeFile(t, path, `
[sums]
min_size = 8
max_size = 3
`)
		_, err := Load(Options{Path: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("unknown_format", func(t *testing.T) {
		isolate(t)
		_, err := Load(Options{Overrides: map[string]interface{}{"display.format": "html"}})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefault(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultContent(), string(data))

	err = WriteDefault(path, false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	assert.NoError(t, WriteDefault(path, true))
}

func TestDefaultPath(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, filepath.Join(dir, "matrixlab", "config.toml"), DefaultPath())
}

func TestGenerateOptions(t *testing.T) {
	isolate(t)
	cfg, err := Default()
	require.NoError(t, err)

	opts := cfg.Diagonals.Generate(4)
	assert.Equal(t, 4, opts.Rows)
	assert.Equal(t, 4, opts.Cols)
	assert.Equal(t, -50, opts.Min)
	assert.Equal(t, 50, opts.Max)
	assert.True(t, opts.ExcludeZero)
	assert.True(t, opts.RandomSign)

	sums := cfg.Sums.Generate(2, 3)
	assert.Equal(t, 3, sums.Cols)
	assert.Equal(t, 5, sums.Min)
	assert.Equal(t, 10, sums.Max)
	assert.False(t, sums.RandomSign)
}
