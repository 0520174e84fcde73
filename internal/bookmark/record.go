package bookmark

import (
	"strings"
	"time"
)

// Record is a single bookmark row from an export file. Path is the tokenized
// folder path; empty means the bookmark sits directly at the root.
type Record struct {
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	Path     []string  `json:"path"`
	RawPath  string    `json:"raw_path,omitempty"`
	Created  time.Time `json:"created,omitempty"`
	Modified bool      `json:"modified"`
	Browser  string    `json:"browser,omitempty"`
	Domain   string    `json:"domain,omitempty"`
}

// HasCreated reports whether the record carries a created timestamp.
func (r Record) HasCreated() bool {
	return !r.Created.IsZero()
}

// Timestamp layouts seen in browser export files. Exports written on Windows
// use single-digit hours before 10:00, so both variants are tried.
var createdLayouts = []string{
	"2006/01/02 15:04:05",
	"2006/1/2 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseCreated parses an export timestamp string. An empty or unparseable
// value yields the zero time; timestamp trouble never fails a record.
func ParseCreated(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
