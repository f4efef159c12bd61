package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("built-in default config invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	var cfg CaveConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded YAML invalid: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML drifted from Default():\nyaml:    %+v\ndefault: %+v", cfg, Default())
	}
}

func TestValidateRejectsDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CaveConfig)
	}{
		{"zero world", func(c *CaveConfig) { c.World.Width = 0 }},
		{"inverted gap range", func(c *CaveConfig) { c.Obstacles.MinGap = 300; c.Obstacles.MaxGap = 200 }},
		{"gap exceeds world height", func(c *CaveConfig) { c.Obstacles.MaxGap = 900 }},
		{"tip margin eats the width", func(c *CaveConfig) { c.Obstacles.TipMargin = 60 }},
		{"non-positive radius", func(c *CaveConfig) { c.Bat.BodyRadius = 0 }},
		{"bat outside world", func(c *CaveConfig) { c.Bat.XFrac = 1.5 }},
		{"negative drag", func(c *CaveConfig) { c.Scroll.Drag = -0.1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted a degenerate config")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := Default()
	custom.Physics.Gravity = 900.0
	data, err := yaml.Marshal(&custom)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Physics.Gravity != 900.0 {
		t.Errorf("custom gravity not applied, got %g", cfg.Physics.Gravity)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load must fail for an explicit path that does not exist")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: {width: -1}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load must fail for an explicit path with invalid values")
	}
}

func TestBatX(t *testing.T) {
	cfg := Default()
	want := cfg.World.Width * cfg.Bat.XFrac
	if got := cfg.Bat.X(cfg.World.Width); got != want {
		t.Errorf("Bat.X() = %g, expected %g", got, want)
	}
}
