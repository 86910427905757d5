package sketch

import (
	"math"
	"sort"
)

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Segment is a directed line segment.
type Segment struct {
	A, B Point
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside or on the rectangle boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the rectangle midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset returns the rectangle shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// ClipToRect clips segment s against rect using Liang-Barsky: four
// half-plane tests narrow a parametric interval [t0,t1]; an empty interval
// means the segment lies entirely outside.
func ClipToRect(s Segment, r Rect) (Segment, bool) {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y

	t0, t1 := 0.0, 1.0
	edges := [4]struct{ p, q float64 }{
		{-dx, s.A.X - r.X},      // left
		{dx, r.X + r.W - s.A.X}, // right
		{-dy, s.A.Y - r.Y},      // top
		{dy, r.Y + r.H - s.A.Y}, // bottom
	}

	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return Segment{}, false // parallel and outside
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > t1 {
				return Segment{}, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return Segment{}, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return Segment{
		A: Point{X: s.A.X + t0*dx, Y: s.A.Y + t0*dy},
		B: Point{X: s.A.X + t1*dx, Y: s.A.Y + t1*dy},
	}, true
}

// holeParamTolerance deduplicates near-identical hole-edge intersections.
const holeParamTolerance = 1e-4

// holeEndpointTolerance suppresses sub-segments whose intersection parameter
// sits on the segment's own endpoint, which would draw zero length.
const holeEndpointTolerance = 1e-3

// ClipAroundHole suppresses the portion of a segment that falls inside a
// rectangular hole, returning the visible sub-segments. The input is
// expected to be already clipped to its cell; the hole is typically a
// smaller centered rectangle.
//
// Both endpoints inside the hole: nothing visible. Two or more boundary
// crossings: the pre-entry and post-exit pieces survive, each only when its
// own endpoint is outside the hole. One crossing (tangent touch): the half
// that does not start inside the hole survives. No crossing: the whole
// segment survives.
func ClipAroundHole(s Segment, hole Rect) []Segment {
	aIn := hole.Contains(s.A)
	bIn := hole.Contains(s.B)
	if aIn && bIn {
		return nil
	}

	ts := holeIntersections(s, hole)
	switch {
	case len(ts) >= 2:
		var out []Segment
		tEnter, tExit := ts[0], ts[len(ts)-1]
		if !aIn && tEnter > holeEndpointTolerance {
			out = append(out, Segment{A: s.A, B: pointAt(s, tEnter)})
		}
		if !bIn && tExit < 1-holeEndpointTolerance {
			out = append(out, Segment{A: pointAt(s, tExit), B: s.B})
		}
		return out
	case len(ts) == 1:
		// Tangent touch: keep whichever half does not start inside the hole.
		t := ts[0]
		if aIn {
			return []Segment{{A: pointAt(s, t), B: s.B}}
		}
		if bIn {
			return []Segment{{A: s.A, B: pointAt(s, t)}}
		}
		return []Segment{s}
	default:
		return []Segment{s}
	}
}

func pointAt(s Segment, t float64) Point {
	return Point{
		X: s.A.X + t*(s.B.X-s.A.X),
		Y: s.A.Y + t*(s.B.Y-s.A.Y),
	}
}

// holeIntersections returns the sorted, deduplicated parameters in (0,1)
// where the segment crosses the hole boundary.
func holeIntersections(s Segment, hole Rect) []float64 {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y

	var ts []float64
	add := func(t float64) {
		if t <= 0 || t >= 1 {
			return
		}
		ts = append(ts, t)
	}

	// Vertical edges: solve for x = hole.X and x = hole.X + hole.W.
	if dx != 0 {
		for _, x := range [2]float64{hole.X, hole.X + hole.W} {
			t := (x - s.A.X) / dx
			y := s.A.Y + t*dy
			if y >= hole.Y && y <= hole.Y+hole.H {
				add(t)
			}
		}
	}
	// Horizontal edges.
	if dy != 0 {
		for _, y := range [2]float64{hole.Y, hole.Y + hole.H} {
			t := (y - s.A.Y) / dy
			x := s.A.X + t*dx
			if x >= hole.X && x <= hole.X+hole.W {
				add(t)
			}
		}
	}

	sort.Float64s(ts)

	// Corner hits register on two edges; collapse parameters closer than
	// the tolerance.
	var dedup []float64
	for _, t := range ts {
		if len(dedup) > 0 && t-dedup[len(dedup)-1] < holeParamTolerance {
			continue
		}
		dedup = append(dedup, t)
	}
	return dedup
}
