package source

import (
	"strings"
	"testing"
	"time"
)

func TestCSVSource_Basic(t *testing.T) {
	input := `Title,URL,Folder Path,Created Time,Modified Time,Web Browser
Go Blog,https://go.dev/blog,Dev\Go,2023/04/05 09:30:00,,Chrome
News,https://news.example.com,News,2023/4/5 9:05:00,2023/05/01 10:00:00,Firefox
Rootmark,https://root.example.com,,,,Chrome
`
	p := &CSVSource{}
	records, err := p.Parse(strings.NewReader(input), "bookmarks.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Title != "Go Blog" || first.URL != "https://go.dev/blog" {
		t.Errorf("first record wrong: %+v", first)
	}
	if len(first.Path) != 2 || first.Path[0] != "Dev" || first.Path[1] != "Go" {
		t.Errorf("first record path = %v, want [Dev Go]", first.Path)
	}
	want := time.Date(2023, 4, 5, 9, 30, 0, 0, time.UTC)
	if !first.Created.Equal(want) {
		t.Errorf("first record created = %v, want %v", first.Created, want)
	}
	if first.Modified {
		t.Error("first record should not be modified")
	}

	if !records[1].Modified {
		t.Error("second record should be modified")
	}
	if records[1].Browser != "Firefox" {
		t.Errorf("second record browser = %q", records[1].Browser)
	}

	// Empty folder path means root.
	if len(records[2].Path) != 0 {
		t.Errorf("third record path = %v, want empty", records[2].Path)
	}
	if records[2].HasCreated() {
		t.Error("third record should have absent created time")
	}
}

func TestCSVSource_BOMAndCaseInsensitiveHeaders(t *testing.T) {
	input := "\xef\xbb\xbftitle,url,folder path\nA,https://a.example.com,X\\Y\n"
	p := &CSVSource{}
	records, err := p.Parse(strings.NewReader(input), "bookmarks.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Title != "A" || len(records[0].Path) != 2 {
		t.Errorf("record wrong: %+v", records[0])
	}
}

func TestCSVSource_RaggedRows(t *testing.T) {
	// Rows shorter than the header degrade to empty fields, not errors.
	input := "Title,URL,Folder Path\nOnly Title\n"
	p := &CSVSource{}
	records, err := p.Parse(strings.NewReader(input), "bookmarks.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].URL != "" {
		t.Errorf("expected degraded record, got %+v", records)
	}
}

func TestCSVSource_Empty(t *testing.T) {
	p := &CSVSource{}
	records, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
