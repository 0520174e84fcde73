package source

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/marklens/marklens/internal/bookmark"
)

// NetscapeSource reads the Netscape bookmark file format every major browser
// exports as HTML: nested DL lists where H3 headings are folders and A
// anchors are bookmarks, with ADD_DATE/LAST_MODIFIED unix-second attributes.
type NetscapeSource struct{}

func (p *NetscapeSource) Parse(r io.Reader, filename string) ([]bookmark.Record, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse bookmark html: %w", err)
	}

	var records []bookmark.Record

	// Walk DL lists with the current folder path. Browsers leave DT tags
	// unclosed, so the parser nests each folder's DL inside the DT holding
	// its H3; both that layout and sibling DLs are handled.
	var walkList func(n *html.Node, path []string)
	walkList = func(n *html.Node, path []string) {
		pendingFolder := ""
		pendingSet := false
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "dt":
				pendingSet = false
				for d := c.FirstChild; d != nil; d = d.NextSibling {
					if d.Type != html.ElementNode {
						continue
					}
					switch d.Data {
					case "h3":
						pendingFolder = textContent(d)
						pendingSet = true
					case "a":
						records = append(records, anchorRecord(d, path))
					case "dl":
						walkList(d, childPath(path, pendingFolder, pendingSet))
						pendingSet = false
					}
				}
			case "dl":
				walkList(c, childPath(path, pendingFolder, pendingSet))
				pendingSet = false
			default:
				walkList(c, path)
			}
		}
	}
	walkList(doc, nil)

	return records, nil
}

func childPath(path []string, folder string, hasFolder bool) []string {
	if !hasFolder || folder == "" {
		return path
	}
	return append(append([]string(nil), path...), folder)
}

func anchorRecord(a *html.Node, path []string) bookmark.Record {
	rec := bookmark.Record{
		Title:   textContent(a),
		URL:     attr(a, "href"),
		Path:    append([]string(nil), path...),
		RawPath: bookmark.JoinPath(path),
	}
	if ts := unixAttr(a, "add_date"); ts > 0 {
		rec.Created = time.Unix(ts, 0).UTC()
	}
	rec.Modified = unixAttr(a, "last_modified") > 0
	return rec
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func unixAttr(n *html.Node, name string) int64 {
	v := attr(n, name)
	if v == "" {
		return 0
	}
	ts, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
