package sketch

import (
	"math"

	"github.com/ray-zero3/hatchlog/internal/event"
)

// Drawing colors. The composition is monochrome ink except for the
// policy-violation fill.
var (
	inkColor       = RGB{R: 24, G: 24, B: 32}
	violationColor = RGB{R: 196, G: 36, B: 36}
)

// violationFillAlpha is the translucency of the red violation wash.
const violationFillAlpha = 60

// hatchJitterDeg is the random perturbation applied to each hatch angle so
// rows of identical events do not read as a mechanical screen.
const hatchJitterDeg = 1.5

// CellRenderer draws one grid cell. It shares the composer's random stream,
// so cell draw order is part of the deterministic contract.
type CellRenderer struct {
	cfg *Config
	rng *RNG
	s   Surface
}

// NewCellRenderer binds a renderer to a surface and random stream.
func NewCellRenderer(cfg *Config, rng *RNG, s Surface) *CellRenderer {
	return &CellRenderer{cfg: cfg, rng: rng, s: s}
}

// Draw renders one cell in collection mode: motif boundary points are
// returned for the composer's connection pass instead of being drawn. A nil
// event draws a bare border.
func (r *CellRenderer) Draw(cell Rect, ev *event.Prepared) []Point {
	r.drawBorder(cell, ev)
	if ev == nil {
		return nil
	}

	if ev.Kind == event.KindPolicyViolation {
		r.drawViolation(cell, ev)
		return nil
	}

	r.drawHatch(cell, ev)
	if ev.HasSnapshotAfter {
		r.drawSnapshotTick(cell)
	}

	rays := r.radialRays(cell, ev)
	points := make([]Point, len(rays))
	for i, ray := range rays {
		points[i] = ray.B
	}
	return points
}

// DrawStandalone renders one cell with every motif materialized locally:
// radial rays are drawn with their point reflections and boundary markers,
// and undo/paste flag marks are drawn in-cell. Used by single-cell renderers
// that skip the composer's global connection pass.
func (r *CellRenderer) DrawStandalone(cell Rect, ev *event.Prepared) {
	r.drawBorder(cell, ev)
	if ev == nil {
		return
	}

	if ev.Kind == event.KindPolicyViolation {
		r.drawViolation(cell, ev)
		return
	}

	r.drawHatch(cell, ev)
	if ev.HasSnapshotAfter {
		r.drawSnapshotTick(cell)
	}

	params := r.cfg.Hatch.ParamsFor(ev.Severity)
	r.s.SetStroke(inkColor, params.Alpha)
	r.s.SetStrokeWeight(params.Weight)
	center := cell.Center()
	for _, ray := range r.radialRays(cell, ev) {
		r.s.Line(ray.A.X, ray.A.Y, ray.B.X, ray.B.Y)
		// Point reflection of the boundary hit through the center.
		mirror := Point{X: 2*center.X - ray.B.X, Y: 2*center.Y - ray.B.Y}
		r.s.Line(center.X, center.Y, mirror.X, mirror.Y)
		r.drawPointMarker(ray.B, params.Weight)
	}

	switch {
	case ev.Flags.UndoLike, ev.Flags.RedoLike:
		r.DrawUndoMark(cell)
	case ev.Flags.PasteLike:
		r.DrawPasteMark(cell)
	}
}

// drawBorder draws the cell frame. An attributed AI prompt length boosts
// weight and alpha, emphasizing cells where an AI edit followed a sizeable
// prompt.
func (r *CellRenderer) drawBorder(cell Rect, ev *event.Prepared) {
	emphasis := 0.0
	if ev != nil {
		emphasis = promptEmphasis(ev.AIPromptLen)
	}
	r.s.NoFill()
	r.s.SetStroke(inkColor, math.Round(lerp(80, 200, emphasis)))
	r.s.SetStrokeWeight(lerp(0.8, 2.2, emphasis))
	r.s.Rect(cell.X, cell.Y, cell.W, cell.H)
}

// drawViolation fills the cell with translucent red and cross-hatches both
// diagonals at boosted weight. No other motif is drawn on violations.
func (r *CellRenderer) drawViolation(cell Rect, ev *event.Prepared) {
	r.s.NoStroke()
	r.s.SetFill(violationColor, violationFillAlpha)
	r.s.Rect(cell.X, cell.Y, cell.W, cell.H)

	params := r.cfg.Hatch.ParamsFor(ev.Severity)
	r.s.NoFill()
	r.s.SetStroke(violationColor, params.Alpha)
	r.s.SetStrokeWeight(params.Weight + r.cfg.Hatch.ViolationWeightBonus)
	for _, angle := range HatchAngles(ev.Normalized) {
		r.hatchLines(cell, angle, params.Spacing, Rect{})
	}
}

// drawHatch fills the cell with parallel lines at the event's angle and
// severity-mapped density, punching a central erase hole sized by deleted
// characters.
func (r *CellRenderer) drawHatch(cell Rect, ev *event.Prepared) {
	params := r.cfg.Hatch.ParamsFor(ev.Severity)
	ratio := EraseRatio(ev.Delta.DeletedChars)

	var hole Rect
	if ratio > 0 {
		hw, hh := cell.W*ratio, cell.H*ratio
		hole = Rect{
			X: cell.X + (cell.W-hw)/2,
			Y: cell.Y + (cell.H-hh)/2,
			W: hw,
			H: hh,
		}
	}

	r.s.NoFill()
	r.s.SetStroke(inkColor, params.Alpha)
	r.s.SetStrokeWeight(params.Weight)
	for _, angle := range HatchAngles(ev.Normalized) {
		jittered := angle + r.rng.Range(-hatchJitterDeg, hatchJitterDeg)
		r.hatchLines(cell, jittered, params.Spacing, hole)
	}
}

// hatchLines draws parallel lines at angleDeg covering the cell, clipped to
// the cell bounds and around the hole (a zero-size hole clips nothing).
func (r *CellRenderer) hatchLines(cell Rect, angleDeg, spacing float64, hole Rect) {
	theta := angleDeg * math.Pi / 180
	dir := Point{X: math.Cos(theta), Y: math.Sin(theta)}
	normal := Point{X: -dir.Y, Y: dir.X}

	center := cell.Center()
	// Half the projection span of the cell onto the hatch normal.
	reach := (cell.W*math.Abs(normal.X) + cell.H*math.Abs(normal.Y)) / 2
	halfDiag := math.Hypot(cell.W, cell.H) / 2

	for offset := -reach; offset <= reach; offset += spacing {
		anchor := Point{X: center.X + normal.X*offset, Y: center.Y + normal.Y*offset}
		long := Segment{
			A: Point{X: anchor.X - dir.X*halfDiag*2, Y: anchor.Y - dir.Y*halfDiag*2},
			B: Point{X: anchor.X + dir.X*halfDiag*2, Y: anchor.Y + dir.Y*halfDiag*2},
		}

		clipped, ok := ClipToRect(long, cell)
		if !ok {
			continue
		}
		if hole.W <= 0 || hole.H <= 0 {
			r.s.Line(clipped.A.X, clipped.A.Y, clipped.B.X, clipped.B.Y)
			continue
		}
		for _, seg := range ClipAroundHole(clipped, hole) {
			r.s.Line(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
		}
	}
}

// radialRays is the shared motif producer: for an edit with character
// change, it casts random-angle rays from the cell center and returns the
// center-to-boundary segments. Collection mode keeps only the B endpoints;
// standalone mode materializes the full rays.
func (r *CellRenderer) radialRays(cell Rect, ev *event.Prepared) []Segment {
	if ev.Kind != event.KindEdit {
		return nil
	}
	total := ev.Delta.AddedChars + ev.Delta.DeletedChars
	count := r.cfg.Motif.RadialPointCount(total)
	if count == 0 {
		return nil
	}

	center := cell.Center()
	reach := math.Hypot(cell.W, cell.H)
	rays := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		theta := r.rng.Range(0, 2*math.Pi)
		far := Point{
			X: center.X + math.Cos(theta)*reach,
			Y: center.Y + math.Sin(theta)*reach,
		}
		clipped, ok := ClipToRect(Segment{A: center, B: far}, cell)
		if !ok {
			continue
		}
		rays = append(rays, clipped)
	}
	return rays
}

// drawSnapshotTick marks an edit immediately followed by a snapshot: a short
// horizontal tick at the snapshot hatch angle, set above the cell center. No
// random draw, so it never shifts the shared stream.
func (r *CellRenderer) drawSnapshotTick(cell Rect) {
	center := cell.Center()
	arm := cell.W * 0.2
	y := cell.Y + cell.H*0.15
	r.s.SetStroke(inkColor, r.cfg.Hatch.AlphaMax)
	r.s.SetStrokeWeight(r.cfg.Hatch.WeightMin)
	r.s.Line(center.X-arm, y, center.X+arm, y)
}

// DrawUndoMark draws the standalone undo/redo motif: a short line
// perpendicular to the human hatch direction through the cell center.
func (r *CellRenderer) DrawUndoMark(cell Rect) {
	center := cell.Center()
	arm := math.Min(cell.W, cell.H) * 0.3
	r.s.SetStroke(inkColor, r.cfg.Motif.UndoMarkAlpha)
	r.s.SetStrokeWeight(r.cfg.Hatch.WeightMin)
	// Perpendicular to the 45-degree hatch.
	r.s.Line(center.X-arm, center.Y+arm, center.X+arm, center.Y-arm)
}

// DrawPasteMark draws the standalone paste motif: a thick directional line
// across the cell.
func (r *CellRenderer) DrawPasteMark(cell Rect) {
	inset := cell.Inset(math.Min(cell.W, cell.H) * 0.15)
	r.s.SetStroke(inkColor, r.cfg.Hatch.AlphaMax)
	r.s.SetStrokeWeight(r.cfg.Hatch.WeightMax * r.cfg.Motif.PasteWeightMultiplier)
	r.s.Line(inset.X, inset.Y+inset.H, inset.X+inset.W, inset.Y)
}

// drawPointMarker draws a small ellipse at a boundary point.
func (r *CellRenderer) drawPointMarker(p Point, weight float64) {
	d := 2 + weight
	r.s.Ellipse(p.X, p.Y, d, d)
}
