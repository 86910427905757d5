// Package event defines the editing-session event model: the raw JSONL
// record shape, the normalized null-safe form with computed severity, and
// the prepared form carrying per-render annotations.
package event

// Event kinds recorded in session logs.
const (
	KindEdit            = "edit"
	KindSnapshot        = "snapshot"
	KindAIPrompt        = "ai_prompt"
	KindModeChange      = "mode_change"
	KindPolicyViolation = "policy_violation"
	KindSessionStart    = "session_start"
	KindSessionPause    = "session_pause"
	KindSessionResume   = "session_resume"
)

// Origin modes for edit events.
const (
	OriginHuman = "human"
	OriginAI    = "ai"
)

// FileRef identifies the file an edit touched.
type FileRef struct {
	Path     string `json:"path,omitempty"`
	Language string `json:"language,omitempty"`
}

// Delta is the character/line magnitude of an edit.
type Delta struct {
	AddedChars   int `json:"added_chars,omitempty"`
	DeletedChars int `json:"deleted_chars,omitempty"`
	AddedLines   int `json:"added_lines,omitempty"`
	DeletedLines int `json:"deleted_lines,omitempty"`
}

// Flags classify an edit beyond its delta.
type Flags struct {
	PasteLike bool `json:"is_paste_like,omitempty"`
	UndoLike  bool `json:"is_undo_like,omitempty"`
	RedoLike  bool `json:"is_redo_like,omitempty"`
}

// RawEvent is one line in a session log. All fields except ts and event are
// optional; pointers distinguish absent from zero.
type RawEvent struct {
	TS          int64    `json:"ts"`
	ElapsedMS   *int64   `json:"elapsed_ms,omitempty"`
	Kind        string   `json:"event"`
	OriginMode  string   `json:"origin_mode,omitempty"`
	SubKind     string   `json:"kind,omitempty"`
	File        *FileRef `json:"file,omitempty"`
	Delta       *Delta   `json:"delta,omitempty"`
	Flags       *Flags   `json:"flags,omitempty"`
	Detail      string   `json:"detail,omitempty"`
	SessionID   string   `json:"session_id,omitempty"`
	WorkspaceID string   `json:"workspace_id,omitempty"`
	Prompt      string   `json:"prompt,omitempty"`
	To          string   `json:"to,omitempty"`
}

// Normalized is a RawEvent with every optional field resolved to a concrete
// value, plus the computed severity. Immutable once created: severity is a
// pure function of (kind, flags, delta), never of sequence position.
type Normalized struct {
	TS          int64
	ElapsedMS   int64
	Kind        string
	OriginMode  string
	SubKind     string
	File        FileRef
	Delta       Delta
	Flags       Flags
	Detail      string
	SessionID   string
	WorkspaceID string
	Prompt      string
	To          string
	Severity    float64
}

// Prepared is a Normalized event plus annotations derived during one
// preparation pass. The annotations are transient: recomputed on every pass
// over the full time-ordered sequence, never persisted.
type Prepared struct {
	Normalized

	// HasSnapshotAfter is true when the event is immediately followed by a
	// snapshot in time order.
	HasSnapshotAfter bool

	// AIPromptLen is the length of the most recent unconsumed AI prompt,
	// attributed to AI-origin edits until a human mode change resets it.
	AIPromptLen int
}

// Normalize resolves a RawEvent's optional fields and computes severity.
func Normalize(r RawEvent) Normalized {
	n := Normalized{
		TS:          r.TS,
		Kind:        r.Kind,
		OriginMode:  r.OriginMode,
		SubKind:     r.SubKind,
		Detail:      r.Detail,
		SessionID:   r.SessionID,
		WorkspaceID: r.WorkspaceID,
		Prompt:      r.Prompt,
		To:          r.To,
	}
	if r.ElapsedMS != nil {
		n.ElapsedMS = *r.ElapsedMS
	}
	if r.File != nil {
		n.File = *r.File
	}
	if r.Delta != nil {
		n.Delta = *r.Delta
	}
	if r.Flags != nil {
		n.Flags = *r.Flags
	}
	n.Severity = Severity(n)
	return n
}
