// Package config provides run configuration loading for startracker. It
// handles loading from an optional YAML file and supplies the defaults
// used when no file (or no particular key) is given.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"startracker/internal/calib"
	"startracker/internal/frame"
	"startracker/internal/spot"
)

// Config is the run configuration consumed by the pipeline orchestrator
// and overridable by CLI flags in cmd/startracker.
type Config struct {
	Threshold  int     `yaml:"threshold"`
	MinArea    int     `yaml:"min_area"`
	EpsilonDeg float64 `yaml:"epsilon_deg"`
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`

	ImagePath    string `yaml:"image_path"`
	CalibPath    string `yaml:"calib_path"`
	CatalogPath  string `yaml:"catalog_path"`
	DebugPNGPath string `yaml:"debug_png_path"`
}

// DefaultEpsilonDeg is the default angular-matching tolerance.
const DefaultEpsilonDeg = 0.15

// DefaultConfig returns the configuration used when no YAML file
// overrides a value.
func DefaultConfig() *Config {
	return &Config{
		Threshold:  frame.DefaultThreshold,
		MinArea:    spot.DefaultMinArea,
		EpsilonDeg: DefaultEpsilonDeg,
		Rows:       frame.DefaultRows,
		Cols:       frame.DefaultCols,
	}
}

// Load reads a YAML run configuration from path. A missing file is not
// an error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadCalibration is a convenience wrapper so callers need only the
// RunConfig to reach the calibration file it names.
func (c *Config) LoadCalibration() (*calib.Calibration, error) {
	return calib.Load(c.CalibPath)
}
