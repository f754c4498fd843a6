package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/simplefind/simplefind/internal/types"
)

func TestPrintTable_NoMatches_ShowsFooter(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintTable(&buf, nil, PrintOptions{Duration: 1200 * time.Millisecond, FilesScanned: 10, LinesScanned: 42}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "No matches found") {
		t.Fatalf("expected friendly no-matches message; got: %q", out)
	}
	if !strings.Contains(out, "Files searched: 10 (42 lines)") {
		t.Fatalf("expected footer with files searched; got: %q", out)
	}
}

func TestPrintTable_WithMatches(t *testing.T) {
	var buf bytes.Buffer
	ms := []types.MatchResult{{Path: "a.go", Line: 3, Column: 8, LineText: "Hello, world!"}}
	if err := PrintTable(&buf, ms, PrintOptions{NoColor: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(strings.ToUpper(out), "PATH") {
		t.Fatalf("expected table header with PATH; got: %q", out)
	}
	if !strings.Contains(out, "Hello, world!") || !strings.Contains(out, "a.go") {
		t.Fatalf("expected match row in table; got: %q", out)
	}
	if strings.Contains(out, "Matches:") {
		t.Fatalf("footer should be omitted without stats; got: %q", out)
	}
}

func TestPrintText_Vimgrep(t *testing.T) {
	var buf bytes.Buffer
	ms := []types.MatchResult{
		{Path: "a.txt", Line: 1, Column: 1, LineText: "foo bar foo"},
		{Path: "a.txt", Line: 1, Column: 9, LineText: "foo bar foo"},
	}
	PrintText(&buf, ms, PrintOptions{NoColor: true})
	want := "a.txt:1:1:foo bar foo\na.txt:1:9:foo bar foo\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestPrintText_Color(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, []types.MatchResult{{Path: "a", Line: 1, Column: 1, LineText: "x"}}, PrintOptions{})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI colour codes; got %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("ééééé", 3); got != "éé…" {
		t.Fatalf("got %q", got)
	}
}
