package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/marklens/marklens/internal/bookmark"
)

// CSVSource reads the tabular export format: one bookmark per row with
// Title, URL, Folder Path, Created Time, Modified Time and Web Browser
// columns. Unknown columns are ignored; missing ones degrade to empty
// fields.
type CSVSource struct{}

func (p *CSVSource) Parse(r io.Reader, filename string) ([]bookmark.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(string(stripBOM(data))))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// First row is headers; match case-insensitively.
	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []bookmark.Record
	for _, row := range rows[1:] {
		rawPath := cell(row, "folder path")
		records = append(records, bookmark.Record{
			Title:    cell(row, "title"),
			URL:      cell(row, "url"),
			RawPath:  rawPath,
			Path:     bookmark.SplitPath(rawPath, ""),
			Created:  bookmark.ParseCreated(cell(row, "created time")),
			Modified: cell(row, "modified time") != "",
			Browser:  cell(row, "web browser"),
		})
	}
	return records, nil
}
