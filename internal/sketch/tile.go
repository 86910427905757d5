package sketch

import (
	"context"
	"fmt"

	"github.com/ray-zero3/hatchlog/internal/event"
)

// Tiler repeats the composer across a tile grid at a higher pixel density
// and stitches the results onto a destination surface. The core stays a pure
// function of (events, config, viewport, scale): each tile renders the full
// logical composition through a Transform mapping its viewport onto an
// offscreen buffer.
type Tiler struct {
	cfg      *Config
	composer *Composer
}

// NewTiler creates a tiler sharing the composer's configuration.
func NewTiler(cfg *Config) *Tiler {
	return &Tiler{cfg: cfg, composer: NewComposer(cfg)}
}

// Render draws the composition tile by tile. The seed resolves once so every
// tile replays the same command stream. ctx is checked between tiles only: a
// full tile render is the unit of work and never stops midway.
func (t *Tiler) Render(ctx context.Context, dst Surface, factory BufferFactory, events []event.Prepared) (*Report, error) {
	grid := t.cfg.Tile.Grid
	scale := t.cfg.Tile.Scale
	tileW := t.cfg.Canvas.Width / float64(grid)
	tileH := t.cfg.Canvas.Height / float64(grid)

	seed, derived := ResolveSeed(t.cfg.Seed)

	var report *Report
	for row := 0; row < grid; row++ {
		for col := 0; col < grid; col++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("tile %d,%d: %w", row, col, err)
			}

			buf := factory.NewBuffer(tileW*scale, tileH*scale)
			view := &Transform{
				Dst:     buf,
				Scale:   scale,
				OffsetX: -float64(col) * tileW,
				OffsetY: -float64(row) * tileH,
			}
			report = t.composer.RenderWithSeed(view, events, seed)
			buf.BlitTo(dst, float64(col)*tileW*scale, float64(row)*tileH*scale)
		}
	}

	if report != nil {
		report.SeedDerived = derived
	}
	return report, nil
}
