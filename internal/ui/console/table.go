package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/codefind/codefind-cli/internal/searcher"
)

// TableRenderer buffers matches and renders them as one table after the
// scan finishes. The header and summary lines match the plain renderer.
type TableRenderer struct {
	w       io.Writer
	colored bool
	matches []searcher.Match
}

func NewTableRenderer(w io.Writer, colored bool) *TableRenderer {
	return &TableRenderer{w: w, colored: colored}
}

func (t *TableRenderer) paint(c text.Color, s string) string {
	if !t.colored {
		return s
	}
	return c.Sprint(s)
}

func (t *TableRenderer) OnStart(req searcher.Request) {
	fmt.Fprintln(t.w, t.paint(text.FgCyan, "Searching for pattern: "+req.Pattern))
	fmt.Fprintln(t.w, t.paint(text.FgCyan, "In files matching: "+req.FilePattern))
	fmt.Fprintln(t.w, t.paint(text.FgCyan, "Directory: "+req.Directory))
	fmt.Fprintln(t.w, strings.Repeat("=", separatorWidth))
}

func (t *TableRenderer) OnMatch(m searcher.Match) {
	t.matches = append(t.matches, m)
}

func (t *TableRenderer) OnDone(count int) {
	if count == 0 {
		fmt.Fprintln(t.w, t.paint(text.FgYellow, "No matches found"))
		return
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"File", "Line", "Text"})
	for _, m := range t.matches {
		tw.AppendRow(table.Row{m.File, m.Line, m.Text})
	}
	fmt.Fprintln(t.w, tw.Render())
	fmt.Fprintln(t.w, t.paint(text.FgGreen, fmt.Sprintf("Found %d matches", count)))
}
