package event

import (
	"math"
	"testing"
)

func edit(added, deleted int) Normalized {
	return Normalized{Kind: KindEdit, Delta: Delta{AddedChars: added, DeletedChars: deleted}}
}

func TestSeverityPolicyViolation(t *testing.T) {
	got := Severity(Normalized{Kind: KindPolicyViolation})
	if got != 1.0 {
		t.Errorf("expected exactly 1.0 for policy_violation, got %g", got)
	}

	// Violation wins even with flags and delta set.
	got = Severity(Normalized{
		Kind:  KindPolicyViolation,
		Flags: Flags{PasteLike: true},
		Delta: Delta{AddedChars: 99999},
	})
	if got != 1.0 {
		t.Errorf("expected flags/delta ignored on violation, got %g", got)
	}
}

func TestSeverityFlagOverrides(t *testing.T) {
	cases := []struct {
		name  string
		flags Flags
		want  float64
	}{
		{"undo", Flags{UndoLike: true}, 0.15},
		{"redo", Flags{RedoLike: true}, 0.25},
		{"paste", Flags{PasteLike: true}, 0.85},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := Normalized{Kind: KindEdit, Flags: tc.flags, Delta: Delta{AddedChars: 500}}
			if got := Severity(n); got != tc.want {
				t.Errorf("expected %g regardless of delta, got %g", tc.want, got)
			}
		})
	}
}

func TestSeverityEditFloor(t *testing.T) {
	if got := Severity(edit(0, 0)); got != 0.1 {
		t.Errorf("expected 0.1 floor for zero-change edit, got %g", got)
	}
}

func TestSeverityEditCurve(t *testing.T) {
	// sqrt(log1p(chars)/log1p(30000)), always in [0.1, 1].
	prev := 0.0
	for _, chars := range []int{1, 10, 100, 1000, 30000, 1000000} {
		got := Severity(edit(chars, 0))
		if got < 0.1 || got > 1 {
			t.Errorf("severity for %d chars out of range: %g", chars, got)
		}
		if got < prev {
			t.Errorf("severity not monotone in chars: %d -> %g after %g", chars, got, prev)
		}
		prev = got
	}

	want := math.Sqrt(math.Log1p(300) / math.Log1p(30000))
	if got := Severity(edit(100, 200)); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected added+deleted combined: want %g, got %g", want, got)
	}
}

func TestSeverityFixedKinds(t *testing.T) {
	cases := map[string]float64{
		KindSnapshot:      0.2,
		KindSessionStart:  0.4,
		KindSessionPause:  0.3,
		KindSessionResume: 0.35,
		KindModeChange:    0.3,
		"unknown_kind":    0.5,
	}
	for kind, want := range cases {
		if got := Severity(Normalized{Kind: kind}); got != want {
			t.Errorf("%s: want %g, got %g", kind, want, got)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	n := Normalize(RawEvent{TS: 42, Kind: KindEdit})
	if n.ElapsedMS != 0 || n.Delta != (Delta{}) || n.Flags != (Flags{}) || n.File != (FileRef{}) {
		t.Errorf("expected null-safe defaults, got %+v", n)
	}
	if n.Severity != 0.1 {
		t.Errorf("expected severity computed during normalize, got %g", n.Severity)
	}
}
