// Package config provides the editor's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable editor settings. Zero values are filled from
// Default, so a partial file only overrides what it names.
type Config struct {
	// PickRadius is the vertex hit distance in canvas pixels.
	PickRadius float64 `yaml:"pick_radius"`

	// Marker radii in canvas pixels, by vertex state.
	MarkerRadius       float64 `yaml:"marker_radius"`
	MarkerRadiusHover  float64 `yaml:"marker_radius_hover"`
	MarkerRadiusSelect float64 `yaml:"marker_radius_select"`

	// Confidence band thresholds: >= HighConfidence is "high",
	// >= MediumConfidence is "medium", anything below is "low".
	HighConfidence   float64 `yaml:"high_confidence"`
	MediumConfidence float64 `yaml:"medium_confidence"`

	Colors Colors `yaml:"colors"`
}

// Colors holds overlay colors as "#rrggbb" strings.
type Colors struct {
	BandHigh      string `yaml:"band_high"`
	BandMedium    string `yaml:"band_medium"`
	BandLow       string `yaml:"band_low"`
	Selected      string `yaml:"selected"`
	MarkerDefault string `yaml:"marker_default"`
	MarkerHover   string `yaml:"marker_hover"`
	MarkerSelect  string `yaml:"marker_select"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PickRadius:         10,
		MarkerRadius:       5,
		MarkerRadiusHover:  7,
		MarkerRadiusSelect: 9,
		HighConfidence:     0.8,
		MediumConfidence:   0.6,
		Colors: Colors{
			BandHigh:      "#22aa44",
			BandMedium:    "#ddaa00",
			BandLow:       "#cc3333",
			Selected:      "#00aaff",
			MarkerDefault: "#ffffff",
			MarkerHover:   "#ffff00",
			MarkerSelect:  "#00aaff",
		},
	}
}

// DefaultPath returns ~/.config/region-editor/config.yaml.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "region-editor", "config.yaml")
}

// Load reads a config file, layering it over Default. A missing file is
// not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PickRadius <= 0 {
		return fmt.Errorf("pick_radius must be positive, got %v", c.PickRadius)
	}
	if c.MediumConfidence < 0 || c.HighConfidence > 1 || c.MediumConfidence > c.HighConfidence {
		return fmt.Errorf("confidence thresholds must satisfy 0 <= medium <= high <= 1")
	}
	return nil
}
