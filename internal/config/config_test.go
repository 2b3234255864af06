package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if *cfg != *def {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "pick_radius: 14\ncolors:\n  selected: \"#ff00ff\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PickRadius != 14 {
		t.Errorf("expected pick_radius 14, got %v", cfg.PickRadius)
	}
	if cfg.Colors.Selected != "#ff00ff" {
		t.Errorf("expected selected color overridden, got %s", cfg.Colors.Selected)
	}
	// Unnamed settings keep their defaults.
	if cfg.MarkerRadius != 5 || cfg.HighConfidence != 0.8 {
		t.Errorf("defaults lost under partial override: %+v", cfg)
	}
	if cfg.Colors.BandHigh != "#22aa44" {
		t.Errorf("default colors lost: %+v", cfg.Colors)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero pick radius", "pick_radius: 0\n"},
		{"negative pick radius", "pick_radius: -3\n"},
		{"inverted thresholds", "high_confidence: 0.5\nmedium_confidence: 0.7\n"},
		{"threshold above one", "high_confidence: 1.5\n"},
	}
	for _, c := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("pick_radius: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if filepath.Base(p) != "config.yaml" {
		t.Errorf("unexpected default path %s", p)
	}
}
