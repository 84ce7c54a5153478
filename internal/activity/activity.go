// Package activity keeps a JSON-lines record of document mutations.
package activity

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// FileName is the activity log file inside the config directory.
	FileName = "activity.jsonl"

	logFileMode   = 0o600
	logDirMode    = 0o750
	maxLogEntries = 10000 // truncate oldest entries when log exceeds this size
)

// Entry represents a single activity log entry.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Ref       string    `json:"ref"`
	Detail    string    `json:"detail"`
}

// Append appends an entry to the activity log in dir.
// If the log exceeds maxLogEntries, the oldest entries are truncated.
func Append(dir string, entry Entry) error {
	if err := os.MkdirAll(dir, logDirMode); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	path := filepath.Join(dir, FileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode) //nolint:gosec // log path from config dir
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling log entry: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}

	// Truncate if needed (best-effort; errors are non-fatal).
	_ = truncateIfNeeded(path, maxLogEntries)

	return nil
}

// truncateIfNeeded rewrites the log keeping only the newest limit lines.
func truncateIfNeeded(path string, limit int) error {
	f, err := os.Open(path) //nolint:gosec // trusted path
	if err != nil {
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	_ = f.Close()

	if err := scanner.Err(); err != nil {
		return err
	}
	if len(lines) <= limit {
		return nil
	}

	lines = lines[len(lines)-limit:]
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), logFileMode)
}

// Record appends an entry stamped with the current time. Errors are
// discarded because logging should never fail a command.
func Record(dir, action, ref, detail string) {
	_ = Append(dir, Entry{
		Timestamp: time.Now(),
		Action:    action,
		Ref:       ref,
		Detail:    detail,
	})
}

// Read returns all entries in the log in dir, oldest first. Malformed
// lines are skipped.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, FileName)) //nolint:gosec // trusted path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if json.Unmarshal(scanner.Bytes(), &e) == nil {
			entries = append(entries, e)
		}
	}
	return entries, scanner.Err()
}
