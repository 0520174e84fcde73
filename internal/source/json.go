package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/marklens/marklens/internal/bookmark"
)

// JSONSource reads the JSON export format: an array of objects carrying the
// same fields as the CSV columns. Key casing varies between export tools, so
// a few spellings are accepted per field.
type JSONSource struct{}

func (p *JSONSource) Parse(r io.Reader, filename string) ([]bookmark.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var entries []map[string]any
	if err := json.Unmarshal(stripBOM(data), &entries); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	var records []bookmark.Record
	for _, entry := range entries {
		rawPath := pick(entry, "Folder Path", "folder_path", "path")
		records = append(records, bookmark.Record{
			Title:    pick(entry, "Title", "title"),
			URL:      pick(entry, "URL", "url"),
			RawPath:  rawPath,
			Path:     bookmark.SplitPath(rawPath, ""),
			Created:  bookmark.ParseCreated(pick(entry, "Created Time", "created_time", "created")),
			Modified: pick(entry, "Modified Time", "modified_time", "modified") != "",
			Browser:  pick(entry, "Web Browser", "web_browser", "browser"),
		})
	}
	return records, nil
}

func pick(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := entry[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}
