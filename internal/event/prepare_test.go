package event

import "testing"

func TestPrepareSnapshotAnnotation(t *testing.T) {
	events := []Normalized{
		{TS: 1, Kind: KindEdit},
		{TS: 2, Kind: KindSnapshot},
		{TS: 3, Kind: KindEdit},
		{TS: 4, Kind: KindEdit},
	}
	got := Prepare(events, PrepareOptions{})
	if len(got) != 3 {
		t.Fatalf("expected 3 edits, got %d", len(got))
	}
	if !got[0].HasSnapshotAfter {
		t.Error("edit at ts=1 should be flagged: snapshot follows immediately")
	}
	if got[1].HasSnapshotAfter || got[2].HasSnapshotAfter {
		t.Error("edits without a following snapshot must not be flagged")
	}
}

func TestPreparePromptAttribution(t *testing.T) {
	events := []Normalized{
		{TS: 1, Kind: KindAIPrompt, Prompt: "write a parser"},
		{TS: 2, Kind: KindEdit, OriginMode: OriginAI},
		{TS: 3, Kind: KindEdit, OriginMode: OriginAI}, // sticky, not consumed
		{TS: 4, Kind: KindEdit, OriginMode: OriginHuman},
		{TS: 5, Kind: KindModeChange, To: OriginHuman},
		{TS: 6, Kind: KindEdit, OriginMode: OriginAI}, // after reset
	}
	got := Prepare(events, PrepareOptions{})

	want := len("write a parser")
	if got[0].AIPromptLen != want || got[1].AIPromptLen != want {
		t.Errorf("AI edits should carry the sticky prompt length %d, got %d and %d",
			want, got[0].AIPromptLen, got[1].AIPromptLen)
	}
	if got[2].AIPromptLen != 0 {
		t.Errorf("human edit must not be attributed, got %d", got[2].AIPromptLen)
	}
	if got[3].AIPromptLen != 0 {
		t.Errorf("mode change to human must reset attribution, got %d", got[3].AIPromptLen)
	}
}

func TestPreparePromptLengthCountsRunes(t *testing.T) {
	events := []Normalized{
		{TS: 1, Kind: KindAIPrompt, Prompt: "日本語で書いて"},
		{TS: 2, Kind: KindEdit, OriginMode: OriginAI},
	}
	got := Prepare(events, PrepareOptions{})
	if got[0].AIPromptLen != 7 {
		t.Errorf("prompt length must count characters, not bytes: got %d", got[0].AIPromptLen)
	}
}

func TestPrepareKeepsAllWhenNoEdits(t *testing.T) {
	events := []Normalized{
		{TS: 2, Kind: KindSnapshot},
		{TS: 1, Kind: KindSessionStart},
	}
	got := Prepare(events, PrepareOptions{})
	if len(got) != 2 {
		t.Fatalf("fallback should keep all events, got %d", len(got))
	}
	if got[0].TS != 1 {
		t.Error("events should be sorted by ts ascending")
	}
}

func TestPrepareSubsampleStride(t *testing.T) {
	events := make([]Normalized, 1000)
	for i := range events {
		events[i] = Normalized{TS: int64(i), Kind: KindEdit}
	}
	got := Prepare(events, PrepareOptions{MaxEvents: 530})
	if len(got) != 530 {
		t.Fatalf("expected 530 sampled events, got %d", len(got))
	}
	// Nearest-stride: index floor(i*1000/530).
	for _, i := range []int{0, 1, 2, 529} {
		want := int64(i * 1000 / 530)
		if got[i].TS != want {
			t.Errorf("sample %d: want index %d, got %d", i, want, got[i].TS)
		}
	}
}

func TestPrepareOrderSeverity(t *testing.T) {
	events := []Normalized{
		Normalize(RawEvent{TS: 1, Kind: KindEdit, Delta: &Delta{AddedChars: 10}}),
		Normalize(RawEvent{TS: 2, Kind: KindEdit, Delta: &Delta{AddedChars: 10000}}),
		Normalize(RawEvent{TS: 3, Kind: KindEdit}),
	}
	got := Prepare(events, PrepareOptions{Order: OrderSeverity})
	if got[0].TS != 2 || got[2].TS != 3 {
		t.Errorf("expected descending severity order, got ts sequence %d,%d,%d",
			got[0].TS, got[1].TS, got[2].TS)
	}
}

func TestPrepareOrderTypeBlocks(t *testing.T) {
	// No edits, so the fallback keeps every kind and the block order shows.
	events := []Normalized{
		{TS: 1, Kind: KindSnapshot},
		{TS: 2, Kind: KindPolicyViolation},
		{TS: 3, Kind: KindModeChange},
		{TS: 4, Kind: KindPolicyViolation},
	}
	got := Prepare(events, PrepareOptions{Order: OrderTypeBlocks})
	wantKinds := []string{KindPolicyViolation, KindPolicyViolation, KindSnapshot, KindModeChange}
	for i, k := range wantKinds {
		if got[i].Kind != k {
			t.Errorf("position %d: want %s, got %s", i, k, got[i].Kind)
		}
	}
	if got[0].TS != 2 || got[1].TS != 4 {
		t.Error("within a block, time order must hold")
	}
}
