// Package preprocess enriches and validates raw bookmark records before
// analysis. Irregular records degrade to warnings; one bad row never aborts
// the rest of the file.
package preprocess

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/marklens/marklens/internal/bookmark"
)

// Enrich fills derived fields on each record: the URL's domain and a
// normalized title. Records are modified in place and returned for chaining.
func Enrich(records []bookmark.Record) []bookmark.Record {
	for i := range records {
		records[i].Title = strings.TrimSpace(records[i].Title)
		records[i].Domain = ExtractDomain(records[i].URL)
	}
	return records
}

// ExtractDomain returns the host part of a URL, or "" when the URL does not
// parse. Extraction trouble is absorbed, matching the rest of the pipeline.
func ExtractDomain(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Host
}

// Validate drops records that cannot participate in analysis (no URL at all)
// and reports a warning per dropped record. Everything else passes through:
// a missing title or timestamp is degraded state, not an error.
func Validate(records []bookmark.Record) (kept []bookmark.Record, warnings []string) {
	kept = make([]bookmark.Record, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.URL) == "" {
			warnings = append(warnings, fmt.Sprintf("record %d: missing url, skipped", i))
			continue
		}
		if strings.TrimSpace(rec.Title) == "" {
			warnings = append(warnings, fmt.Sprintf("record %d: missing title", i))
		}
		kept = append(kept, rec)
	}
	return kept, warnings
}
