package sketch

import "fmt"

// RGB is a stroke or fill color.
type RGB struct {
	R, G, B uint8
}

// Surface is the immediate-mode drawing target the core renders into. The
// core only issues these calls; it never reads pixels back. Alpha values are
// 0-255.
type Surface interface {
	SetStroke(c RGB, alpha float64)
	SetStrokeWeight(px float64)
	SetFill(c RGB, alpha float64)
	NoFill()
	NoStroke()
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64)
	Ellipse(x, y, w, h float64)
}

// BufferFactory creates offscreen surfaces for tiled rendering at a higher
// pixel density.
type BufferFactory interface {
	// NewBuffer allocates an offscreen surface of the given pixel size.
	NewBuffer(w, h float64) Buffer
}

// Buffer is an offscreen surface a compositor can stitch into a destination.
type Buffer interface {
	Surface
	// BlitTo places the buffer's content at (x, y) on the destination.
	BlitTo(dst Surface, x, y float64)
}

// Command is one recorded drawing call.
type Command struct {
	Op   string
	Args []float64
}

// Recorder is a Surface that captures the ordered command stream instead of
// drawing. Two render passes are equivalent exactly when their recorded
// streams match.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) record(op string, args ...float64) {
	r.Commands = append(r.Commands, Command{Op: op, Args: args})
}

func (r *Recorder) SetStroke(c RGB, alpha float64) {
	r.record("setStroke", float64(c.R), float64(c.G), float64(c.B), alpha)
}

func (r *Recorder) SetStrokeWeight(px float64) { r.record("setStrokeWeight", px) }

func (r *Recorder) SetFill(c RGB, alpha float64) {
	r.record("setFill", float64(c.R), float64(c.G), float64(c.B), alpha)
}

func (r *Recorder) NoFill()   { r.record("noFill") }
func (r *Recorder) NoStroke() { r.record("noStroke") }

func (r *Recorder) Line(x1, y1, x2, y2 float64) { r.record("line", x1, y1, x2, y2) }
func (r *Recorder) Rect(x, y, w, h float64)     { r.record("rect", x, y, w, h) }
func (r *Recorder) Ellipse(x, y, w, h float64)  { r.record("ellipse", x, y, w, h) }

// String renders one command for test diagnostics.
func (c Command) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Transform wraps a Surface, scaling and translating every coordinate. It
// makes the core viewport/scale parametric: a tiler renders the full logical
// composition through a Transform that maps the tile's viewport onto its
// buffer.
type Transform struct {
	Dst Surface
	// Scale multiplies logical coordinates into device coordinates.
	Scale float64
	// OffsetX/OffsetY translate logical coordinates before scaling.
	OffsetX, OffsetY float64
}

func (t *Transform) tx(x float64) float64 { return (x + t.OffsetX) * t.Scale }
func (t *Transform) ty(y float64) float64 { return (y + t.OffsetY) * t.Scale }

func (t *Transform) SetStroke(c RGB, alpha float64) { t.Dst.SetStroke(c, alpha) }
func (t *Transform) SetStrokeWeight(px float64)     { t.Dst.SetStrokeWeight(px * t.Scale) }
func (t *Transform) SetFill(c RGB, alpha float64)   { t.Dst.SetFill(c, alpha) }
func (t *Transform) NoFill()                        { t.Dst.NoFill() }
func (t *Transform) NoStroke()                      { t.Dst.NoStroke() }

func (t *Transform) Line(x1, y1, x2, y2 float64) {
	t.Dst.Line(t.tx(x1), t.ty(y1), t.tx(x2), t.ty(y2))
}

func (t *Transform) Rect(x, y, w, h float64) {
	t.Dst.Rect(t.tx(x), t.ty(y), w*t.Scale, h*t.Scale)
}

func (t *Transform) Ellipse(x, y, w, h float64) {
	t.Dst.Ellipse(t.tx(x), t.ty(y), w*t.Scale, h*t.Scale)
}
