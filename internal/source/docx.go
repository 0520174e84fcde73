package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/marklens/marklens/internal/bookmark"
)

// DOCXSource reads Word documents used as bookmark lists: heading-styled
// paragraphs define the folder path, and URLs found in body paragraphs
// become bookmarks under the current heading.
type DOCXSource struct{}

func (p *DOCXSource) Parse(r io.Reader, filename string) ([]bookmark.Record, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "marklens-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	type stackEntry struct {
		name  string
		level int
	}
	var stack []stackEntry

	var records []bookmark.Record
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		level := docxHeadingLevel(para)
		text := docxParagraphText(para)
		if text == "" {
			continue
		}

		if level > 0 {
			for len(stack) > 0 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, stackEntry{name: text, level: level})
			continue
		}

		path := make([]string, 0, len(stack))
		for _, e := range stack {
			path = append(path, e.name)
		}
		for _, url := range extractURLs(text) {
			title := strings.TrimSpace(strings.ReplaceAll(text, url, ""))
			if title == "" {
				title = url
			}
			records = append(records, bookmark.Record{
				Title:   title,
				URL:     url,
				Path:    append([]string(nil), path...),
				RawPath: bookmark.JoinPath(path),
			})
		}
	}
	return records, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
