// Package streaklog persists the set of days on which the user logged an
// eco action. The on-disk format is a single JSON object:
//
//	{"logged_dates": ["2024-01-01", "2024-01-02", ...]}
//
// sorted ascending with no duplicates. A missing or unparseable file is
// treated as empty history, never as an error.
package streaklog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"time"
)

const dayFormat = "2006-01-02"

type logFile struct {
	LoggedDates []string `json:"logged_dates"`
}

// Log is a file-backed, append-only set of log dates. It is not safe for
// concurrent writers; two processes appending at once race and the last
// write wins.
type Log struct {
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the location of the underlying log file.
func (l *Log) Path() string {
	return l.path
}

// Load reads the logged dates, sorted ascending and deduplicated. Missing
// or corrupt files yield an empty slice.
func (l *Log) Load() []string {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}

	var f logFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}

	return normalize(f.LoggedDates)
}

// Append inserts a date (YYYY-MM-DD) into the log and rewrites the file.
// Appending a date that is already present is a no-op.
func (l *Log) Append(date string) error {
	if _, err := time.Parse(dayFormat, date); err != nil {
		return err
	}

	dates := l.Load()
	if slices.Contains(dates, date) {
		return nil
	}
	dates = append(dates, date)
	slices.Sort(dates)

	return l.write(dates)
}

func (l *Log) write(dates []string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(logFile{LoggedDates: dates}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(l.path, data, 0600)
}

// normalize sorts and deduplicates, dropping anything that is not a valid
// date. Hand-edited files therefore still round-trip to a clean set.
func normalize(dates []string) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, err := time.Parse(dayFormat, d); err != nil {
			continue
		}
		out = append(out, d)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
