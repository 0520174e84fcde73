package source

import (
	"strings"
	"testing"
	"time"
)

const netscapeSample = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
	<DT><H3 ADD_DATE="1680000000">Dev</H3>
	<DL><p>
		<DT><A HREF="https://go.dev" ADD_DATE="1680600000">The Go Programming Language</A>
		<DT><H3>Go</H3>
		<DL><p>
			<DT><A HREF="https://go.dev/blog" ADD_DATE="1680700000" LAST_MODIFIED="1690000000">Go Blog</A>
		</DL><p>
	</DL><p>
	<DT><A HREF="https://news.example.com">Top-level news</A>
</DL><p>
`

func TestNetscapeSource_NestedFolders(t *testing.T) {
	p := &NetscapeSource{}
	records, err := p.Parse(strings.NewReader(netscapeSample), "bookmarks.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(records), records)
	}

	byURL := map[string]int{}
	for i, rec := range records {
		byURL[rec.URL] = i
	}

	godev := records[byURL["https://go.dev"]]
	if len(godev.Path) != 1 || godev.Path[0] != "Dev" {
		t.Errorf("go.dev path = %v, want [Dev]", godev.Path)
	}
	want := time.Unix(1680600000, 0).UTC()
	if !godev.Created.Equal(want) {
		t.Errorf("go.dev created = %v, want %v", godev.Created, want)
	}
	if godev.Modified {
		t.Error("go.dev should not be modified")
	}

	blog := records[byURL["https://go.dev/blog"]]
	if len(blog.Path) != 2 || blog.Path[0] != "Dev" || blog.Path[1] != "Go" {
		t.Errorf("blog path = %v, want [Dev Go]", blog.Path)
	}
	if !blog.Modified {
		t.Error("blog should be modified (LAST_MODIFIED set)")
	}
	if blog.Title != "Go Blog" {
		t.Errorf("blog title = %q", blog.Title)
	}

	news := records[byURL["https://news.example.com"]]
	if len(news.Path) != 0 {
		t.Errorf("news path = %v, want root", news.Path)
	}
	if news.HasCreated() {
		t.Error("news should have absent created time")
	}
}

func TestNetscapeSource_PlainHTMLYieldsNothing(t *testing.T) {
	// An HTML page without DL bookmark lists produces no records rather
	// than an error.
	p := &NetscapeSource{}
	records, err := p.Parse(strings.NewReader("<html><body><a href='https://x.example.com'>x</a></body></html>"), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestNetscapeSource_BadTimestampDegrades(t *testing.T) {
	input := `<DL><DT><A HREF="https://x.example.com" ADD_DATE="not-a-number">x</A></DL>`
	p := &NetscapeSource{}
	records, err := p.Parse(strings.NewReader(input), "bookmarks.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].HasCreated() {
		t.Error("garbage ADD_DATE should degrade to absent timestamp")
	}
}
