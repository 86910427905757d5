package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// warnContentLimit caps how much of a malformed line is kept in its warning.
const warnContentLimit = 80

// LoadResult holds the normalized events read from one log plus warnings for
// lines that could not be parsed.
type LoadResult struct {
	Events   []Normalized
	Warnings []string
}

// Load reads a newline-delimited JSON session log from disk.
func Load(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	res, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read session log %s: %w", path, err)
	}
	return res, nil
}

// Read parses a session log from r. Malformed lines are skipped and recorded
// as warnings with their line number and truncated content, never fatal.
func Read(r io.Reader) (*LoadResult, error) {
	res := &LoadResult{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw RawEvent
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			res.Warnings = append(res.Warnings, warnLine(lineNo, line))
			continue
		}
		if raw.Kind == "" {
			res.Warnings = append(res.Warnings, warnLine(lineNo, line))
			continue
		}

		res.Events = append(res.Events, Normalize(raw))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return res, nil
}

func warnLine(n int, content string) string {
	runes := []rune(content)
	if len(runes) > warnContentLimit {
		content = string(runes[:warnContentLimit]) + "..."
	}
	return fmt.Sprintf("line %d: skipped malformed record: %s", n, content)
}
