package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
)

// MergeResult is the outcome of stitching several session logs into one
// contiguous sequence.
type MergeResult struct {
	// MergeID tags the stitched output so downstream tools can tell merged
	// logs apart from single-session ones.
	MergeID string
	Records []RawEvent
	// Dropped counts records discarded as duplicates.
	Dropped int
	// Warnings collects malformed lines across all inputs.
	Warnings []string
}

// mergeKey identifies a record for deduplication.
type mergeKey struct {
	ts      int64
	session string
	kind    string
}

// Merge reads multiple append-only session logs, deduplicates records by
// (timestamp, session, event kind), sorts by timestamp, and renumbers
// elapsed_ms contiguously: time keeps accumulating within a session, while
// the gap between one session's last event and the next session's first
// contributes nothing.
func Merge(paths []string) (*MergeResult, error) {
	res := &MergeResult{MergeID: uuid.NewString()}

	seen := map[mergeKey]bool{}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open session log: %w", err)
		}
		warnings, records, err := readRaw(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read session log %s: %w", path, err)
		}
		res.Warnings = append(res.Warnings, warnings...)

		for _, r := range records {
			key := mergeKey{ts: r.TS, session: r.SessionID, kind: r.Kind}
			if seen[key] {
				res.Dropped++
				continue
			}
			seen[key] = true
			res.Records = append(res.Records, r)
		}
	}

	sort.SliceStable(res.Records, func(i, j int) bool {
		return res.Records[i].TS < res.Records[j].TS
	})
	renumberElapsed(res.Records)

	return res, nil
}

// renumberElapsed rewrites elapsed_ms so the merged sequence reads as one
// contiguous session: deltas between consecutive events count only when both
// belong to the same source session.
func renumberElapsed(records []RawEvent) {
	var elapsed int64
	for i := range records {
		if i > 0 && records[i].SessionID == records[i-1].SessionID {
			elapsed += records[i].TS - records[i-1].TS
		}
		v := elapsed
		records[i].ElapsedMS = &v
	}
}

// WriteRecords writes raw records back out as JSONL.
func WriteRecords(w io.Writer, records []RawEvent) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// readRaw parses raw records without normalizing, for merge round-trips.
func readRaw(r io.Reader) ([]string, []RawEvent, error) {
	var warnings []string
	var records []RawEvent

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var raw RawEvent
		if err := json.Unmarshal(line, &raw); err != nil || raw.Kind == "" {
			warnings = append(warnings, warnLine(lineNo, string(line)))
			continue
		}
		records = append(records, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan: %w", err)
	}
	return warnings, records, nil
}
