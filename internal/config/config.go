// Package config loads matcalc settings from defaults, an optional TOML file
// and MATCALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfigPath names the env var that points at an explicit config file.
const EnvConfigPath = "MATCALC_CONFIG"

// Config holds application configuration.
type Config struct {
	Display DisplayConfig
	Grid    GridConfig
	Numeric NumericConfig
}

// DisplayConfig controls how results are rendered.
type DisplayConfig struct {
	Precision int
	Color     bool
	Accent    string
	Error     string
}

// GridConfig holds the initial grid size for interactive mode.
type GridConfig struct {
	Rows int
	Cols int
}

// NumericConfig holds tolerances used by -verify.
type NumericConfig struct {
	Epsilon float64
}

// Load reads configuration. path overrides MATCALC_CONFIG; when both are empty
// ~/.config/matcalc/config.toml is used if present.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("display.precision", 6)
	v.SetDefault("display.color", true)
	v.SetDefault("display.accent", "#89b4fa")
	v.SetDefault("display.error", "#f38ba8")
	v.SetDefault("grid.rows", 2)
	v.SetDefault("grid.cols", 2)
	v.SetDefault("numeric.epsilon", 1e-9)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "matcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MATCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the renderer or grid cannot honor.
func (c Config) Validate() error {
	if c.Display.Precision < 0 || c.Display.Precision > 17 {
		return fmt.Errorf("display.precision %d: must be in [0, 17]", c.Display.Precision)
	}
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("grid %dx%d: dimensions must be > 0", c.Grid.Rows, c.Grid.Cols)
	}
	if eps := c.Numeric.Epsilon; math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("numeric.epsilon %g: must be finite and >= 0", eps)
	}
	return nil
}
