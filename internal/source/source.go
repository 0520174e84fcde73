// Package source reads bookmark export files into records. Each supported
// format has its own reader; all of them degrade on malformed entries rather
// than failing the file.
package source

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/marklens/marklens/internal/bookmark"
)

// Source converts raw export bytes into bookmark records.
type Source interface {
	Parse(r io.Reader, filename string) ([]bookmark.Record, error)
}

// SupportedExtensions lists the export formats this service can handle.
var SupportedExtensions = map[string]bool{
	".csv":      true,
	".json":     true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
	".docx":     true,
	".pdf":      true,
}

// ForFile returns the appropriate reader for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return &CSVSource{}, nil
	case ".json":
		return &JSONSource{}, nil
	case ".html", ".htm":
		return &NetscapeSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	case ".pdf":
		return &PDFSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// stripBOM removes a UTF-8 byte order mark. Several browsers write one at
// the top of CSV and JSON exports.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xef, 0xbb, 0xbf})
}
