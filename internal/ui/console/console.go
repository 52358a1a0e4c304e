package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/codefind/codefind-cli/internal/searcher"
)

const separatorWidth = 50

// Renderer streams search results as plain lines, optionally colorized.
// Content is byte-identical in both modes apart from the ANSI codes.
type Renderer struct {
	w       io.Writer
	colored bool
}

func NewRenderer(w io.Writer, colored bool) *Renderer {
	return &Renderer{w: w, colored: colored}
}

func (r *Renderer) paint(c text.Color, s string) string {
	if !r.colored {
		return s
	}
	return c.Sprint(s)
}

func (r *Renderer) OnStart(req searcher.Request) {
	fmt.Fprintln(r.w, r.paint(text.FgCyan, "Searching for pattern: "+req.Pattern))
	fmt.Fprintln(r.w, r.paint(text.FgCyan, "In files matching: "+req.FilePattern))
	fmt.Fprintln(r.w, r.paint(text.FgCyan, "Directory: "+req.Directory))
	fmt.Fprintln(r.w, strings.Repeat("=", separatorWidth))
}

func (r *Renderer) OnMatch(m searcher.Match) {
	fmt.Fprintln(r.w, r.paint(text.FgGreen, "File: "+m.File))
	fmt.Fprintln(r.w, r.paint(text.FgGreen, fmt.Sprintf("Line %d: %s", m.Line, m.Text)))
	fmt.Fprintln(r.w)
}

func (r *Renderer) OnDone(count int) {
	if count == 0 {
		fmt.Fprintln(r.w, r.paint(text.FgYellow, "No matches found"))
		return
	}
	fmt.Fprintln(r.w, r.paint(text.FgGreen, fmt.Sprintf("Found %d matches", count)))
}
