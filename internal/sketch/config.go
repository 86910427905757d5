// Package sketch is the rendering core: it turns a prepared event sequence
// into drawing commands for a grid-based hatching composition. One render
// pass is a pure function of (events, config, viewport, scale, seed).
package sketch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ray-zero3/hatchlog/internal/event"
)

// CanvasConfig sets the logical drawing area.
type CanvasConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MarginRatio float64 `yaml:"margin_ratio"`
}

// HatchConfig holds the severity-to-parameter mapping constants.
type HatchConfig struct {
	SpacingMax      float64 `yaml:"spacing_max"`
	SpacingMin      float64 `yaml:"spacing_min"`
	SpacingClampMin float64 `yaml:"spacing_clamp_min"`
	SpacingClampMax float64 `yaml:"spacing_clamp_max"`
	WeightMin       float64 `yaml:"weight_min"`
	WeightMax       float64 `yaml:"weight_max"`
	AlphaMin        float64 `yaml:"alpha_min"`
	AlphaMax        float64 `yaml:"alpha_max"`
	// ViolationWeightBonus is added on top of the mapped weight for
	// policy-violation cross-hatching.
	ViolationWeightBonus float64 `yaml:"violation_weight_bonus"`
}

// MotifConfig holds parameters for cell motifs beyond plain hatching.
type MotifConfig struct {
	// MaxRadialPoints caps boundary points cast from one cell.
	MaxRadialPoints int `yaml:"max_radial_points"`
	// RadialDivisor scales log(1+chars) down to a point count.
	RadialDivisor float64 `yaml:"radial_divisor"`
	// UndoMarkAlpha is the stroke alpha of the standalone undo mark.
	UndoMarkAlpha float64 `yaml:"undo_mark_alpha"`
	// PasteWeightMultiplier thickens the standalone paste mark.
	PasteWeightMultiplier float64 `yaml:"paste_weight_multiplier"`
	// ConnectionAlpha is the stroke alpha of the nearest-neighbor pass.
	ConnectionAlpha float64 `yaml:"connection_alpha"`
}

// TileConfig controls high-resolution tiled output.
type TileConfig struct {
	// Grid is the tile grid dimension (Grid x Grid tiles). 1 disables tiling.
	Grid int `yaml:"grid"`
	// Scale is the pixel-density multiplier applied per tile.
	Scale float64 `yaml:"scale"`
}

// Config is the full parameter set for one composition.
type Config struct {
	Canvas      CanvasConfig `yaml:"canvas"`
	MaxEvents   int          `yaml:"max_events"`
	Order       event.Order  `yaml:"order"`
	MinGridSize int          `yaml:"min_grid_size"`
	MaxGridSize int          `yaml:"max_grid_size"`
	Hatch       HatchConfig  `yaml:"hatch"`
	Motif       MotifConfig  `yaml:"motif"`
	Tile        TileConfig   `yaml:"tile"`
	// Seed drives every random draw in a pass. 0 means unset: a wall-clock
	// value is substituted, which breaks reproducibility.
	Seed uint32 `yaml:"seed"`
}

// DefaultConfig returns the built-in parameter set.
func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:       900,
			Height:      900,
			MarginRatio: 0.05,
		},
		MaxEvents:   530,
		Order:       event.OrderTime,
		MinGridSize: 5,
		MaxGridSize: 27,
		Hatch: HatchConfig{
			SpacingMax:           18,
			SpacingMin:           4,
			SpacingClampMin:      3,
			SpacingClampMax:      24,
			WeightMin:            0.6,
			WeightMax:            3.0,
			AlphaMin:             40,
			AlphaMax:             200,
			ViolationWeightBonus: 1.0,
		},
		Motif: MotifConfig{
			MaxRadialPoints:       12,
			RadialDivisor:         1.6,
			UndoMarkAlpha:         120,
			PasteWeightMultiplier: 2.0,
			ConnectionAlpha:       70,
		},
		Tile: TileConfig{
			Grid:  1,
			Scale: 1.0,
		},
		Seed: 1,
	}
}

// LoadConfig loads a sketch config from a YAML file. Empty path or a missing
// file returns defaults; invalid YAML returns an error. Values present in
// the file overwrite only the fields they name.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read sketch config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse sketch config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configs that would make the composer degenerate.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.MarginRatio < 0 || c.Canvas.MarginRatio >= 0.5 {
		return fmt.Errorf("margin_ratio must be in [0, 0.5), got %g", c.Canvas.MarginRatio)
	}
	if c.MinGridSize < 1 || c.MaxGridSize < c.MinGridSize {
		return fmt.Errorf("grid size bounds invalid: min %d, max %d", c.MinGridSize, c.MaxGridSize)
	}
	switch c.Order {
	case "", event.OrderTime, event.OrderSeverity, event.OrderTypeBlocks:
	default:
		return fmt.Errorf("unknown order mode %q", c.Order)
	}
	// The spacing clamps bound the hatch line step; a non-positive step
	// would never advance across the cell.
	if c.Hatch.SpacingClampMin <= 0 || c.Hatch.SpacingClampMax < c.Hatch.SpacingClampMin {
		return fmt.Errorf("spacing clamps invalid: min %g, max %g", c.Hatch.SpacingClampMin, c.Hatch.SpacingClampMax)
	}
	if c.Hatch.SpacingMin <= 0 || c.Hatch.SpacingMax <= 0 {
		return fmt.Errorf("spacing range must be positive, got %g and %g", c.Hatch.SpacingMin, c.Hatch.SpacingMax)
	}
	if c.Hatch.WeightMin <= 0 || c.Hatch.WeightMax < c.Hatch.WeightMin {
		return fmt.Errorf("weight range invalid: min %g, max %g", c.Hatch.WeightMin, c.Hatch.WeightMax)
	}
	if c.Hatch.AlphaMin < 0 || c.Hatch.AlphaMax < c.Hatch.AlphaMin || c.Hatch.AlphaMax > 255 {
		return fmt.Errorf("alpha range invalid: min %g, max %g", c.Hatch.AlphaMin, c.Hatch.AlphaMax)
	}
	if c.Tile.Grid < 1 {
		return fmt.Errorf("tile grid must be >= 1, got %d", c.Tile.Grid)
	}
	if c.Tile.Scale <= 0 {
		return fmt.Errorf("tile scale must be positive, got %g", c.Tile.Scale)
	}
	return nil
}
