package sketch

import (
	"math"
	"time"

	"github.com/ray-zero3/hatchlog/internal/event"
)

// GridPos is one cell position in traversal order.
type GridPos struct {
	Row, Col int
}

// Report describes one completed render pass.
type Report struct {
	GridSize       int    `json:"grid_size"`
	Events         int    `json:"events"`
	Cells          int    `json:"cells"`
	BoundaryPoints int    `json:"boundary_points"`
	Connections    int    `json:"connections"`
	Seed           uint32 `json:"seed"`
	// SeedDerived is true when the configured seed was 0 and a wall-clock
	// value was substituted; such a pass is not reproducible.
	SeedDerived bool `json:"seed_derived"`
}

// Composer owns one full render pass: it creates the random stream, drives
// the cell renderer over the boustrophedon traversal, accumulates boundary
// points, and runs the global nearest-neighbor connection pass. Nothing is
// shared across passes except the seed value.
type Composer struct {
	cfg *Config
}

// NewComposer creates a composer for the given configuration.
func NewComposer(cfg *Config) *Composer {
	return &Composer{cfg: cfg}
}

// GridSize computes a square grid whose cell count roughly matches the event
// count, clamped to the configured bounds.
func (c *Composer) GridSize(eventCount int) int {
	capped := eventCount
	if c.cfg.MaxEvents > 0 && capped > c.cfg.MaxEvents {
		capped = c.cfg.MaxEvents
	}
	n := int(math.Round(math.Sqrt(float64(capped))))
	if n < c.cfg.MinGridSize {
		n = c.cfg.MinGridSize
	}
	if n > c.cfg.MaxGridSize {
		n = c.cfg.MaxGridSize
	}
	return n
}

// GridPositions returns the boustrophedon traversal of an n x n grid: even
// rows left to right, odd rows right to left, a continuous pen path reading
// chronological order across the grid.
func GridPositions(n int) []GridPos {
	positions := make([]GridPos, 0, n*n)
	for row := 0; row < n; row++ {
		for i := 0; i < n; i++ {
			col := i
			if row%2 == 1 {
				col = n - 1 - i
			}
			positions = append(positions, GridPos{Row: row, Col: col})
		}
	}
	return positions
}

// ResolveSeed substitutes a wall-clock value for an unset (zero) seed. The
// second result reports whether substitution happened, which breaks
// reproducibility.
func ResolveSeed(seed uint32) (uint32, bool) {
	if seed != 0 {
		return seed, false
	}
	return uint32(time.Now().UnixNano()), true
}

// Render draws the full composition for the prepared events onto s and
// returns the pass report. Identical (events, config, nonzero seed) produce
// an identical command stream.
func (c *Composer) Render(s Surface, events []event.Prepared) *Report {
	seed, derived := ResolveSeed(c.cfg.Seed)
	report := c.RenderWithSeed(s, events, seed)
	report.SeedDerived = derived
	return report
}

// RenderWithSeed renders one pass with an explicit seed. The tile compositor
// uses it to draw every tile from the same stream.
func (c *Composer) RenderWithSeed(s Surface, events []event.Prepared, seed uint32) *Report {
	report := &Report{Seed: seed}

	n := c.GridSize(len(events))
	report.GridSize = n
	report.Cells = n * n
	report.Events = len(events)

	margin := c.cfg.Canvas.Width * c.cfg.Canvas.MarginRatio
	area := Rect{
		X: margin,
		Y: margin,
		W: c.cfg.Canvas.Width - 2*margin,
		H: c.cfg.Canvas.Height - 2*margin,
	}
	cellW := area.W / float64(n)
	cellH := area.H / float64(n)

	rng := NewRNG(report.Seed)
	renderer := NewCellRenderer(c.cfg, rng, s)

	var points []Point
	for i, pos := range GridPositions(n) {
		cell := Rect{
			X: area.X + float64(pos.Col)*cellW,
			Y: area.Y + float64(pos.Row)*cellH,
			W: cellW,
			H: cellH,
		}
		var ev *event.Prepared
		if i < len(events) {
			ev = &events[i]
		}
		points = append(points, renderer.Draw(cell, ev)...)
	}

	report.BoundaryPoints = len(points)
	report.Connections = c.connect(s, points)
	return report
}

// connectNeighbors is how many nearest points each boundary point links to.
const connectNeighbors = 2

// connect draws every accumulated boundary point as a small marker, then
// links each point to its nearest neighbors, deduplicating edges. This is a
// global pass: it crosses cell boundaries and cannot run per-cell.
func (c *Composer) connect(s Surface, points []Point) int {
	if len(points) == 0 {
		return 0
	}

	s.NoStroke()
	s.SetFill(inkColor, c.cfg.Hatch.AlphaMax)
	for _, p := range points {
		s.Ellipse(p.X, p.Y, 3, 3)
	}

	s.NoFill()
	s.SetStroke(inkColor, c.cfg.Motif.ConnectionAlpha)
	s.SetStrokeWeight(c.cfg.Hatch.WeightMin)

	drawn := map[[2]int]bool{}
	count := 0
	for i := range points {
		for _, j := range nearest(points, i, connectNeighbors) {
			key := [2]int{i, j}
			if j < i {
				key = [2]int{j, i}
			}
			if drawn[key] {
				continue
			}
			drawn[key] = true
			s.Line(points[i].X, points[i].Y, points[j].X, points[j].Y)
			count++
		}
	}
	return count
}

// nearest returns the indices of the k points closest to points[i] by
// Euclidean distance, excluding i itself. Ties break toward the lower index,
// keeping the pass deterministic.
func nearest(points []Point, i, k int) []int {
	type cand struct {
		idx int
		d   float64
	}
	var best []cand
	for j := range points {
		if j == i {
			continue
		}
		d := dist(points[i], points[j])
		pos := len(best)
		for pos > 0 && (best[pos-1].d > d) {
			pos--
		}
		if pos >= k {
			continue
		}
		best = append(best, cand{})
		copy(best[pos+1:], best[pos:])
		best[pos] = cand{idx: j, d: d}
		if len(best) > k {
			best = best[:k]
		}
	}

	out := make([]int, len(best))
	for n, c := range best {
		out[n] = c.idx
	}
	return out
}
