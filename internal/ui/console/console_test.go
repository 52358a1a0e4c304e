package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/codefind/codefind-cli/internal/searcher"
)

func TestRenderer_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	r.OnStart(searcher.Request{Pattern: "foo", FilePattern: "*.go", Directory: "."})
	r.OnMatch(searcher.Match{File: "a.go", Line: 3, Text: "bar foo baz"})
	r.OnDone(1)

	want := "Searching for pattern: foo\n" +
		"In files matching: *.go\n" +
		"Directory: .\n" +
		strings.Repeat("=", 50) + "\n" +
		"File: a.go\n" +
		"Line 3: bar foo baz\n" +
		"\n" +
		"Found 1 matches\n"
	if buf.String() != want {
		t.Fatalf("output mismatch:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderer_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	r.OnStart(searcher.Request{Pattern: "x", FilePattern: "*.*", Directory: "."})
	r.OnDone(0)
	if !strings.HasSuffix(buf.String(), "No matches found\n") {
		t.Fatalf("want no-matches message, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "File:") {
		t.Fatalf("no match lines expected, got %q", buf.String())
	}
}

func TestRenderer_ColorTogglePreservesContent(t *testing.T) {
	text.EnableColors()
	defer text.DisableColors()

	var plain, colored bytes.Buffer
	for _, r := range []*Renderer{NewRenderer(&plain, false), NewRenderer(&colored, true)} {
		r.OnStart(searcher.Request{Pattern: "p", FilePattern: "*.*", Directory: "."})
		r.OnMatch(searcher.Match{File: "f", Line: 1, Text: "t"})
		r.OnDone(1)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain mode must not emit ANSI codes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colorized mode should emit ANSI codes")
	}
	stripped := text.StripEscape(colored.String())
	if stripped != plain.String() {
		t.Fatalf("content differs between modes:\nplain:   %q\nstripped:%q", plain.String(), stripped)
	}
}

func TestTableRenderer_RendersBufferedMatches(t *testing.T) {
	var buf bytes.Buffer
	r := NewTableRenderer(&buf, false)
	r.OnStart(searcher.Request{Pattern: "foo", FilePattern: "*.go", Directory: "."})
	r.OnMatch(searcher.Match{File: "a.go", Line: 3, Text: "bar"})
	r.OnMatch(searcher.Match{File: "b.go", Line: 7, Text: "baz"})
	r.OnDone(2)

	out := buf.String()
	for _, want := range []string{"a.go", "b.go", "bar", "baz", "Found 2 matches"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRenderer_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	r := NewTableRenderer(&buf, false)
	r.OnStart(searcher.Request{Pattern: "foo", FilePattern: "*.go", Directory: "."})
	r.OnDone(0)
	if !strings.Contains(buf.String(), "No matches found") {
		t.Fatalf("want no-matches message, got %q", buf.String())
	}
}
