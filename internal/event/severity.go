package event

import "math"

// severityCharScale is the character-change count that saturates the
// log-scaled edit severity curve.
const severityCharScale = 30000

// kindSeverity holds fixed severities for non-edit event kinds.
var kindSeverity = map[string]float64{
	KindSnapshot:      0.2,
	KindSessionStart:  0.4,
	KindSessionPause:  0.3,
	KindSessionResume: 0.35,
	KindModeChange:    0.3,
}

// Severity scores an event in [0,1]. Rules apply in priority order, first
// match wins:
//
//  1. policy_violation → 1.0
//  2. undo-like 0.15, redo-like 0.25, paste-like 0.85
//  3. other edits: sqrt(log1p(chars)/log1p(30000)), floored at 0.1
//  4. fixed per-kind constants
//  5. default 0.5
//
// The square root biases mid-range changes upward; the floor keeps
// zero-change edits visible.
func Severity(n Normalized) float64 {
	if n.Kind == KindPolicyViolation {
		return 1.0
	}
	if n.Kind == KindEdit {
		switch {
		case n.Flags.UndoLike:
			return 0.15
		case n.Flags.RedoLike:
			return 0.25
		case n.Flags.PasteLike:
			return 0.85
		}
		chars := n.Delta.AddedChars + n.Delta.DeletedChars
		normalized := math.Log1p(float64(chars)) / math.Log1p(severityCharScale)
		return math.Max(0.1, clamp(math.Sqrt(normalized), 0, 1))
	}
	if s, ok := kindSeverity[n.Kind]; ok {
		return s
	}
	return 0.5
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
