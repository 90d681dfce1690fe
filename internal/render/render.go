// Package render turns a layout plan into the literal output lines of a
// diagnostic report: header, location, gutter-numbered source rows,
// connector rows and footer. All box-drawing glyphs and the exact
// spacing, including trailing padding on tick and spacer rows, are fixed
// here; layout decides only what goes where.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"pinpoint/internal/layout"
	"pinpoint/internal/source"
)

// Options carries everything the renderer needs besides the plan itself.
type Options struct {
	Name      string // display name of the source
	Code      string // optional report code, rendered as a [CODE] prefix
	KindWord  string
	KindColor *color.Color
	Message   string
	Notes     []string
	Helps     []string
	Colors    []*color.Color // by mark id; nil entries render plain
	UseColor  bool
	Compact   bool
}

// glyphs of the diagram frame
const (
	gRail       = '│'
	gRule       = '─'
	gBranch     = '╰'
	gBranchRail = '├'
	gCross      = '┼'
	gCornerTop  = '╭'
	gCornerBot  = '╯'
)

// cell is one display column with its owning mark (-1 for frame).
type cell struct {
	r     rune
	owner int
}

type writer struct {
	w   io.Writer
	err error
}

func (lw *writer) line(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s)
	if lw.err == nil {
		_, lw.err = io.WriteString(lw.w, "\n")
	}
}

// Render writes the complete report text for plan to w. loc is the
// position of the primary span's start, shown in the location line.
func Render(w io.Writer, plan *layout.Plan, loc source.LineCol, opts Options) error {
	lw := &writer{w: w}
	margin := len(strconv.FormatUint(uint64(plan.Last), 10)) + 2
	extra := 2
	if opts.Compact {
		extra = 1
	}

	lw.line(header(opts))
	lw.line(strings.Repeat(" ", margin) + fmt.Sprintf("%c─[ %s:%d:%d ]", gCornerTop, opts.Name, loc.Line, loc.Col))
	if !opts.Compact {
		lw.line(rail(margin))
	}

	for _, ln := range plan.Lines {
		renderLine(lw, ln, margin, extra, opts)
	}

	renderFooter(lw, margin, opts)
	return lw.err
}

func header(opts Options) string {
	word := opts.KindWord
	if opts.UseColor && opts.KindColor != nil {
		word = opts.KindColor.Sprint(word)
	}
	var b strings.Builder
	if opts.Code != "" {
		fmt.Fprintf(&b, "[%s] ", opts.Code)
	}
	b.WriteString(word)
	b.WriteString(":")
	if opts.Message != "" {
		b.WriteString(" ")
		b.WriteString(opts.Message)
	}
	return b.String()
}

func rail(margin int) string {
	return strings.Repeat(" ", margin) + string(gRail)
}

// prefix of every non-source row: the margin rail plus, outside compact
// mode, the alignment space matching the gutter's trailing space.
func rowPrefix(margin int, compact bool) string {
	if compact {
		return rail(margin)
	}
	return rail(margin) + " "
}

func renderLine(lw *writer, ln layout.Line, margin, extra int, opts Options) {
	text := expandTabs(ln.Text)
	if opts.Compact {
		lw.line(fmt.Sprintf(" %*d %c%s", margin-2, ln.Num, gRail, text))
	} else {
		lw.line(fmt.Sprintf(" %*d %c %s", margin-2, ln.Num, gRail, text))
	}

	maxAnchor := 0
	for _, c := range ln.Connectors {
		if d := dispCol(ln.Text, c.Anchor); d > maxAnchor {
			maxAnchor = d
		}
	}

	if !opts.Compact && len(ln.Ticks) > 0 {
		lw.line(rowPrefix(margin, opts.Compact) + tickRow(ln, maxAnchor, extra, opts))
	}

	for lane, conn := range ln.Connectors {
		lw.line(rowPrefix(margin, opts.Compact) + connectorRow(ln, lane, conn, maxAnchor, extra, opts))
		if !opts.Compact && lane < len(ln.Connectors)-1 {
			lw.line(rowPrefix(margin, opts.Compact) + spacerRow(ln, lane+1, maxAnchor, extra, opts))
		}
	}
}

// tickRow draws the row of ticks directly under a source line: anchor and
// continuation rails plus the start corner of multi-line marks. The row
// is space-padded to the same extent as the connector rules below it.
func tickRow(ln layout.Line, maxAnchor, extra int, opts Options) string {
	extent := maxAnchor
	cells := make([]cell, 0, extent+extra+1)
	for _, t := range ln.Ticks {
		d := dispCol(ln.Text, t.Col)
		if d > extent {
			extent = d
		}
		g := gRail
		if t.Kind == layout.TickStart {
			g = gCornerTop
		}
		cells = setCell(cells, d, g, t.Mark)
	}
	return paint(pad(cells, extent+extra), ln, opts)
}

// spacerRow carries the rails of the still-pending lanes between two
// connector rows.
func spacerRow(ln layout.Line, fromLane, maxAnchor, extra int, opts Options) string {
	var cells []cell
	for _, conn := range ln.Connectors[fromLane:] {
		cells = setCell(cells, dispCol(ln.Text, conn.Anchor), gRail, conn.Mark)
	}
	return paint(pad(cells, maxAnchor+extra), ln, opts)
}

// connectorRow draws one lane: rails for deeper pending lanes, the branch
// glyph at the anchor, the horizontal rule out past the rightmost anchor,
// and the message.
func connectorRow(ln layout.Line, lane int, conn layout.Connector, maxAnchor, extra int, opts Options) string {
	var cells []cell
	for _, pending := range ln.Connectors[lane+1:] {
		cells = setCell(cells, dispCol(ln.Text, pending.Anchor), gRail, pending.Mark)
	}

	a := dispCol(ln.Text, conn.Anchor)
	cells = pad(cells, maxAnchor+extra)
	for d := a + 1; d <= maxAnchor+extra; d++ {
		if cells[d].r == gRail {
			cells[d] = cell{gCross, conn.Mark}
		} else {
			cells[d] = cell{gRule, conn.Mark}
		}
	}
	branch := gBranch
	if cells[a].r == gRail {
		branch = gBranchRail
	}
	cells[a] = cell{branch, conn.Mark}

	row := paint(cells, ln, opts)
	msg := " " + conn.Message
	if opts.UseColor && conn.Mark < len(opts.Colors) && opts.Colors[conn.Mark] != nil {
		msg = opts.Colors[conn.Mark].Sprint(msg)
	}
	return row + msg
}

func renderFooter(lw *writer, margin int, opts Options) {
	sep := " "
	if opts.Compact {
		sep = ""
	}
	if len(opts.Notes) > 0 || len(opts.Helps) > 0 {
		if !opts.Compact {
			lw.line(rail(margin))
		}
		for _, note := range opts.Notes {
			lw.line(rail(margin) + sep + "Note: " + note)
		}
		for _, help := range opts.Helps {
			lw.line(rail(margin) + sep + "Help: " + help)
		}
	}
	if !opts.Compact {
		lw.line(strings.Repeat(string(gRule), margin) + string(gCornerBot))
	}
}

func setCell(cells []cell, d int, r rune, owner int) []cell {
	cells = pad(cells, d)
	cells[d] = cell{r, owner}
	return cells
}

// pad extends cells with blanks through display column d inclusive.
func pad(cells []cell, d int) []cell {
	for len(cells) <= d {
		cells = append(cells, cell{' ', -1})
	}
	return cells
}

// paint flattens cells into a string, wrapping runs owned by a colored
// mark in its SGR sequence when color is enabled.
func paint(cells []cell, ln layout.Line, opts Options) string {
	var b strings.Builder
	var run strings.Builder
	owner := -1

	flush := func() {
		if run.Len() == 0 {
			return
		}
		s := run.String()
		if opts.UseColor && owner >= 0 && owner < len(opts.Colors) && opts.Colors[owner] != nil {
			s = opts.Colors[owner].Sprint(s)
		}
		b.WriteString(s)
		run.Reset()
	}

	for _, c := range cells {
		o := c.owner
		if c.r == ' ' {
			o = -1
		}
		if o != owner {
			flush()
			owner = o
		}
		run.WriteRune(c.r)
	}
	flush()
	return b.String()
}
