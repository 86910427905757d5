package sketch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ray-zero3/hatchlog/internal/event"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxEvents != 530 || cfg.MinGridSize != 5 || cfg.MaxGridSize != 27 {
		t.Errorf("defaults wrong: %+v", cfg)
	}
	if cfg.Hatch.SpacingMax != 18 || cfg.Hatch.AlphaMax != 200 {
		t.Errorf("hatch defaults wrong: %+v", cfg.Hatch)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if cfg.MaxEvents != 530 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	content := `
max_events: 100
order: severity
hatch:
  spacing_max: 20
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxEvents != 100 || cfg.Order != event.OrderSeverity {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	if cfg.Hatch.SpacingMax != 20 {
		t.Errorf("nested overlay not applied: %+v", cfg.Hatch)
	}
	// Fields missing from the file keep their defaults.
	if cfg.MinGridSize != 5 || cfg.Hatch.WeightMax != 3.0 {
		t.Errorf("defaults clobbered: %+v", cfg)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_events: [not a number"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("invalid YAML must error")
	}
}

func TestLoadConfigRejectsZeroSpacing(t *testing.T) {
	// A zero spacing clamp would make the hatch line step never advance.
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	content := `
hatch:
  spacing_max: 0
  spacing_min: 0
  spacing_clamp_min: 0
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("zero-spacing config must be rejected")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero canvas", func(c *Config) { c.Canvas.Width = 0 }},
		{"margin too big", func(c *Config) { c.Canvas.MarginRatio = 0.5 }},
		{"grid bounds flipped", func(c *Config) { c.MinGridSize = 10; c.MaxGridSize = 5 }},
		{"bad order", func(c *Config) { c.Order = "random" }},
		{"zero tile grid", func(c *Config) { c.Tile.Grid = 0 }},
		{"negative tile scale", func(c *Config) { c.Tile.Scale = -1 }},
		{"zero spacing clamp", func(c *Config) { c.Hatch.SpacingClampMin = 0 }},
		{"spacing clamps flipped", func(c *Config) { c.Hatch.SpacingClampMin = 24; c.Hatch.SpacingClampMax = 3 }},
		{"zero spacing", func(c *Config) { c.Hatch.SpacingMin = 0; c.Hatch.SpacingMax = 0 }},
		{"weight range flipped", func(c *Config) { c.Hatch.WeightMin = 3; c.Hatch.WeightMax = 0.6 }},
		{"alpha above 255", func(c *Config) { c.Hatch.AlphaMax = 300 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}
