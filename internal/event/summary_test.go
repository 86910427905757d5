package event

import "testing"

func TestSummarize(t *testing.T) {
	events := []Normalized{
		{TS: 100, Kind: KindEdit, OriginMode: OriginHuman, SessionID: "s1",
			Delta: Delta{AddedChars: 10, DeletedChars: 2, AddedLines: 1}},
		{TS: 200, Kind: KindEdit, OriginMode: OriginAI, SessionID: "s2",
			Delta: Delta{AddedChars: 30}},
		{TS: 300, Kind: KindPolicyViolation, SessionID: "s1"},
		{TS: 400, Kind: KindSnapshot, SessionID: "s1"},
	}

	s := Summarize(events)
	if s.Total != 4 || s.Edits != 2 || s.HumanEdits != 1 || s.AIEdits != 1 {
		t.Errorf("counts wrong: %+v", s)
	}
	if s.AddedChars != 40 || s.DeletedChars != 2 || s.AddedLines != 1 {
		t.Errorf("edit totals wrong: %+v", s)
	}
	if s.Violations != 1 || s.Sessions != 2 {
		t.Errorf("violations/sessions wrong: %+v", s)
	}
	if s.FirstTS != 100 || s.LastTS != 400 || s.SpanMS != 300 {
		t.Errorf("time span wrong: %+v", s)
	}
	if s.ByKind[KindEdit] != 2 || s.ByKind[KindSnapshot] != 1 {
		t.Errorf("by-kind counts wrong: %v", s.ByKind)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.SpanMS != 0 || s.Sessions != 0 {
		t.Errorf("empty summary should be zero, got %+v", s)
	}
}
