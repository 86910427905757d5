package sketch

import (
	"math"

	"github.com/ray-zero3/hatchlog/internal/event"
)

// Params are the hatch-drawing parameters mapped from one severity value.
type Params struct {
	Spacing float64
	Weight  float64
	Alpha   float64
}

// hatchAngleBuckets are the angles the default hash bucket selects from.
var hatchAngleBuckets = [4]float64{0, 45, 90, 135}

// ParamsFor maps severity s in [0,1] to hatch parameters. Spacing runs
// inverted: higher severity means denser hatching.
func (h HatchConfig) ParamsFor(s float64) Params {
	return Params{
		Spacing: clamp(lerp(h.SpacingMax, h.SpacingMin, s), h.SpacingClampMin, h.SpacingClampMax),
		Weight:  lerp(h.WeightMin, h.WeightMax, s),
		Alpha:   math.Round(lerp(h.AlphaMin, h.AlphaMax, s)),
	}
}

// HatchAngles returns the hatch angles (degrees, 0 = horizontal) for an
// event. Policy violations get both diagonals for cross-hatching; unknown
// kinds fall back to a stable hash bucket.
func HatchAngles(e event.Normalized) []float64 {
	switch e.Kind {
	case event.KindEdit:
		if e.OriginMode == event.OriginAI {
			return []float64{135}
		}
		return []float64{45}
	case event.KindSnapshot:
		return []float64{0}
	case event.KindModeChange:
		return []float64{90}
	case event.KindPolicyViolation:
		return []float64{45, 135}
	default:
		return []float64{hatchAngleBuckets[hashString(e.Kind)%4]}
	}
}

// EraseRatio maps deleted characters to the fraction of the cell blanked
// from hatching: log-scaled, saturating at 3000 deleted chars, capped at 0.8
// so the hole never swallows the whole cell.
func EraseRatio(deletedChars int) float64 {
	if deletedChars <= 0 {
		return 0
	}
	return clamp(math.Log1p(float64(deletedChars))/math.Log1p(3000), 0, 1) * 0.8
}

// RadialPointCount maps an edit's total character change to the number of
// boundary points its cell casts.
func (m MotifConfig) RadialPointCount(totalChars int) int {
	if totalChars <= 0 {
		return 0
	}
	n := int(math.Round(math.Log1p(float64(totalChars)) / m.RadialDivisor))
	if n < 0 {
		return 0
	}
	if n > m.MaxRadialPoints {
		return m.MaxRadialPoints
	}
	return n
}

// promptEmphasis converts an attributed AI prompt length to a border boost
// factor in [0,1], log-scaled and saturating around 4000 chars.
func promptEmphasis(promptLen int) float64 {
	if promptLen <= 0 {
		return 0
	}
	return clamp(math.Log1p(float64(promptLen))/math.Log1p(4000), 0, 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
