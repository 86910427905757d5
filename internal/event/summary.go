package event

// Summary aggregates a loaded event sequence for the summary command and the
// MCP summarize tool. It is a pure function of the sequence.
type Summary struct {
	Total        int            `json:"total"`
	ByKind       map[string]int `json:"by_kind"`
	Edits        int            `json:"edits"`
	AIEdits      int            `json:"ai_edits"`
	HumanEdits   int            `json:"human_edits"`
	AddedChars   int            `json:"added_chars"`
	DeletedChars int            `json:"deleted_chars"`
	AddedLines   int            `json:"added_lines"`
	DeletedLines int            `json:"deleted_lines"`
	Violations   int            `json:"violations"`
	Sessions     int            `json:"sessions"`
	FirstTS      int64          `json:"first_ts"`
	LastTS       int64          `json:"last_ts"`
	SpanMS       int64          `json:"span_ms"`
}

// Summarize computes counts, edit totals, and the time span of a sequence.
func Summarize(events []Normalized) Summary {
	s := Summary{ByKind: map[string]int{}}
	sessions := map[string]bool{}

	for _, e := range events {
		s.Total++
		s.ByKind[e.Kind]++
		if e.SessionID != "" {
			sessions[e.SessionID] = true
		}
		if s.FirstTS == 0 || e.TS < s.FirstTS {
			s.FirstTS = e.TS
		}
		if e.TS > s.LastTS {
			s.LastTS = e.TS
		}

		switch e.Kind {
		case KindEdit:
			s.Edits++
			switch e.OriginMode {
			case OriginAI:
				s.AIEdits++
			case OriginHuman:
				s.HumanEdits++
			}
			s.AddedChars += e.Delta.AddedChars
			s.DeletedChars += e.Delta.DeletedChars
			s.AddedLines += e.Delta.AddedLines
			s.DeletedLines += e.Delta.DeletedLines
		case KindPolicyViolation:
			s.Violations++
		}
	}

	s.Sessions = len(sessions)
	if s.FirstTS != 0 && s.LastTS >= s.FirstTS {
		s.SpanMS = s.LastTS - s.FirstTS
	}
	return s
}
