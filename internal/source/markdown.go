package source

import (
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/marklens/marklens/internal/bookmark"
)

// MarkdownSource reads markdown link lists: headings define the folder path
// (heading level = nesting depth) and every link under a heading is a
// bookmark in that folder. Markdown carries no timestamps, so records have
// absent created times.
type MarkdownSource struct{}

func (p *MarkdownSource) Parse(r io.Reader, filename string) ([]bookmark.Record, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	// Heading stack tracks the current folder path by level.
	type stackEntry struct {
		name  string
		level int
	}
	var stack []stackEntry

	currentPath := func() []string {
		path := make([]string, 0, len(stack))
		for _, e := range stack {
			path = append(path, e.name)
		}
		return path
	}

	var records []bookmark.Record
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if heading, ok := n.(*ast.Heading); ok {
			name := string(heading.Text(src))
			for len(stack) > 0 && stack[len(stack)-1].level >= heading.Level {
				stack = stack[:len(stack)-1]
			}
			if name != "" {
				stack = append(stack, stackEntry{name: name, level: heading.Level})
			}
			continue
		}
		for _, link := range collectLinks(n, src) {
			link.Path = currentPath()
			link.RawPath = bookmark.JoinPath(link.Path)
			records = append(records, link)
		}
	}
	return records, nil
}

func collectLinks(root ast.Node, src []byte) []bookmark.Record {
	var links []bookmark.Record
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			links = append(links, bookmark.Record{
				Title: string(node.Text(src)),
				URL:   string(node.Destination),
			})
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			url := string(node.URL(src))
			links = append(links, bookmark.Record{Title: url, URL: url})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}
