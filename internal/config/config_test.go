package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, c.Display.Precision)
	assert.True(t, c.Display.Color)
	assert.Equal(t, 2, c.Grid.Rows)
	assert.Equal(t, 2, c.Grid.Cols)
	assert.Equal(t, 1e-9, c.Numeric.Epsilon)
}

func TestLoadFromHomeConfig(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "matcalc")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[display]
precision = 3
color = false

[grid]
rows = 4
cols = 5
`), 0o644))

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Display.Precision)
	assert.False(t, c.Display.Color)
	assert.Equal(t, 4, c.Grid.Rows)
	assert.Equal(t, 5, c.Grid.Cols)
	assert.Equal(t, "#89b4fa", c.Display.Accent, "unset keys keep defaults")
}

func TestLoadExplicitPathAndEnvOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[numeric]\nepsilon = 0.001\n"), 0o644))
	t.Setenv("MATCALC_DISPLAY_PRECISION", "2")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.001, c.Numeric.Epsilon)
	assert.Equal(t, 2, c.Display.Precision)
}

func TestLoadEnvConfigPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[grid]\nrows = 3\n"), 0o644))
	t.Setenv(EnvConfigPath, path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Grid.Rows)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[grid]\nrows = 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid")
}

func TestValidate(t *testing.T) {
	ok := Config{Display: DisplayConfig{Precision: 4}, Grid: GridConfig{Rows: 1, Cols: 1}}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Display.Precision = 20
	require.Error(t, bad.Validate())

	for _, eps := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		bad = ok
		bad.Numeric.Epsilon = eps
		require.Error(t, bad.Validate(), "eps %v", eps)
	}
}

func TestLoadRejectsNonFiniteEpsilonFromEnv(t *testing.T) {
	for _, v := range []string{"NaN", "Inf", "-1"} {
		t.Run(v, func(t *testing.T) {
			isolate(t)
			t.Setenv("MATCALC_NUMERIC_EPSILON", v)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "numeric.epsilon")
		})
	}
}
