package event

import (
	"sort"
	"unicode/utf8"
)

// Order selects how prepared events map onto grid positions.
type Order string

const (
	// OrderTime keeps ascending timestamp order.
	OrderTime Order = "time"
	// OrderSeverity sorts by severity, highest first.
	OrderSeverity Order = "severity"
	// OrderTypeBlocks groups events by kind priority, then by time.
	OrderTypeBlocks Order = "type_blocks"
)

// kindBlockPriority fixes the grouping order for OrderTypeBlocks. Unknown
// kinds sort after every listed one.
var kindBlockPriority = map[string]int{
	KindPolicyViolation: 0,
	KindEdit:            1,
	KindAIPrompt:        2,
	KindSnapshot:        3,
	KindModeChange:      4,
	KindSessionStart:    5,
	KindSessionResume:   6,
	KindSessionPause:    7,
}

// PrepareOptions configures one preparation pass.
type PrepareOptions struct {
	// MaxEvents caps the prepared sequence; excess events are uniformly
	// subsampled. Zero or negative means no cap.
	MaxEvents int
	// Order is the final reordering mode. Empty means OrderTime.
	Order Order
}

// Prepare runs one full preparation pass: sort by timestamp, derive the
// snapshot-follows and AI-prompt-length annotations, filter to edits
// (keeping everything when no edits exist), subsample to MaxEvents, and
// reorder per the configured mode.
func Prepare(events []Normalized, opts PrepareOptions) []Prepared {
	prepared := make([]Prepared, len(events))
	for i, n := range events {
		prepared[i] = Prepared{Normalized: n}
	}
	sort.SliceStable(prepared, func(i, j int) bool {
		return prepared[i].TS < prepared[j].TS
	})

	annotate(prepared)

	filtered := filterEdits(prepared)
	if opts.MaxEvents > 0 && len(filtered) > opts.MaxEvents {
		filtered = subsample(filtered, opts.MaxEvents)
	}

	reorder(filtered, opts.Order)
	return filtered
}

// annotate walks the time-ordered sequence twice: once to flag edits
// immediately followed by a snapshot, once to attribute AI prompt lengths.
// A prompt stays attributed (sticky) to subsequent AI-origin edits until a
// mode change back to human resets it.
func annotate(events []Prepared) {
	for i := range events {
		if events[i].Kind != KindEdit {
			continue
		}
		if i+1 < len(events) && events[i+1].Kind == KindSnapshot {
			events[i].HasSnapshotAfter = true
		}
	}

	promptLen := 0
	for i := range events {
		switch events[i].Kind {
		case KindAIPrompt:
			if events[i].Prompt != "" {
				promptLen = utf8.RuneCountInString(events[i].Prompt)
			}
		case KindModeChange:
			if events[i].To == OriginHuman {
				promptLen = 0
			}
		case KindEdit:
			if events[i].OriginMode == OriginAI && promptLen > 0 {
				events[i].AIPromptLen = promptLen
			}
		}
	}
}

func filterEdits(events []Prepared) []Prepared {
	var edits []Prepared
	for _, e := range events {
		if e.Kind == KindEdit {
			edits = append(edits, e)
		}
	}
	if len(edits) == 0 {
		return events
	}
	return edits
}

// subsample takes a nearest-stride sample: index floor(i*len/max) for each
// output slot. Deterministic, no randomness.
func subsample(events []Prepared, max int) []Prepared {
	out := make([]Prepared, 0, max)
	for i := 0; i < max; i++ {
		out = append(out, events[i*len(events)/max])
	}
	return out
}

func reorder(events []Prepared, order Order) {
	switch order {
	case OrderSeverity:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Severity > events[j].Severity
		})
	case OrderTypeBlocks:
		sort.SliceStable(events, func(i, j int) bool {
			pi, pj := blockRank(events[i].Kind), blockRank(events[j].Kind)
			if pi != pj {
				return pi < pj
			}
			return events[i].TS < events[j].TS
		})
	default:
		// OrderTime: already ascending from the preparation sort, but the
		// subsample preserves it, so nothing to do.
	}
}

func blockRank(kind string) int {
	if p, ok := kindBlockPriority[kind]; ok {
		return p
	}
	return len(kindBlockPriority)
}
