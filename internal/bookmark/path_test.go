package bookmark

import (
	"testing"
	"time"
)

func TestSplitPath_Backslash(t *testing.T) {
	got := SplitPath(`Bookmarks Bar\Dev\Go`, "")
	want := []string{"Bookmarks Bar", "Dev", "Go"}
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitPath_DoubledSeparator(t *testing.T) {
	// Some exports escape the separator; doubled backslashes collapse to one.
	got := SplitPath(`A\\B\\C`, "")
	if len(got) != 3 {
		t.Fatalf("expected 3 segments, got %d (%v)", len(got), got)
	}
}

func TestSplitPath_ForwardSlash(t *testing.T) {
	got := SplitPath("A/B", "")
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected [A B], got %v", got)
	}
}

func TestSplitPath_LeadingTrailingAndConsecutive(t *testing.T) {
	got := SplitPath(`\A\\B\`, "")
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected [A B], got %v", got)
	}
}

func TestSplitPath_WhitespaceSegments(t *testing.T) {
	got := SplitPath(`  A  \   \ B `, "")
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected [A B], got %v", got)
	}
}

func TestSplitPath_Empty(t *testing.T) {
	if got := SplitPath("", ""); got != nil {
		t.Errorf("expected nil for empty path, got %v", got)
	}
	if got := SplitPath("   ", ""); got != nil {
		t.Errorf("expected nil for blank path, got %v", got)
	}
}

func TestParseCreated_Formats(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2023/04/05 09:30:00", time.Date(2023, 4, 5, 9, 30, 0, 0, time.UTC)},
		{"2023/4/5 9:30:00", time.Date(2023, 4, 5, 9, 30, 0, 0, time.UTC)},
		{"2023-04-05 09:30:00", time.Date(2023, 4, 5, 9, 30, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got := ParseCreated(c.in)
		if !got.Equal(c.want) {
			t.Errorf("ParseCreated(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseCreated_Invalid(t *testing.T) {
	if got := ParseCreated("not a date"); !got.IsZero() {
		t.Errorf("expected zero time for garbage, got %v", got)
	}
	if got := ParseCreated(""); !got.IsZero() {
		t.Errorf("expected zero time for empty, got %v", got)
	}
}
