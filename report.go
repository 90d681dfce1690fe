package pinpoint

import (
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
	"github.com/fatih/color"

	"pinpoint/internal/layout"
	"pinpoint/internal/render"
	"pinpoint/internal/source"
)

// Report accumulates a diagnostic and renders it on demand: a primary
// message anchored to a byte range of the source, decorated with labeled
// sub-ranges, notes and help lines. A Report belongs to its call site
// until rendered; rendering itself is reentrant and side-effect-free
// except for the write. Reports are not safe for concurrent mutation.
type Report struct {
	src        Source
	start, end uint32
	code       string
	message    string
	kind       Kind
	priColor   Color // переопределяет цвет первичной метки
	config     Config
	labels     []Label
	notes      []string
	helps      []string
	colors     *ColorGenerator
	ix         *source.Index // memoized across renders
}

// New starts a report over the primary span [start, end). The kind
// defaults to KindError and the config to DefaultConfig. Offsets out of
// range are clamped during layout, never rejected.
func New(src Source, start, end int) *Report {
	return &Report{
		src:    src,
		start:  clampOffset(start),
		end:    clampOffset(end),
		kind:   KindError,
		config: DefaultConfig(),
		colors: NewColorGenerator(),
	}
}

func clampOffset(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}

// WithMessage sets the headline message.
func (r *Report) WithMessage(msg string) *Report {
	r.message = msg
	return r
}

// WithKind sets the report kind.
func (r *Report) WithKind(k Kind) *Report {
	r.kind = k
	return r
}

// WithColor overrides the primary span's color; unset means the kind's
// default color.
func (r *Report) WithColor(c Color) *Report {
	r.priColor = c
	return r
}

// WithCode sets the optional report code shown as a [CODE] header prefix.
func (r *Report) WithCode(code string) *Report {
	r.code = code
	return r
}

// WithConfig replaces the display configuration.
func (r *Report) WithConfig(cfg Config) *Report {
	r.config = cfg
	return r
}

// Label appends a label, assigning the next generator color when the
// label carries none, and returns the label as stored.
func (r *Report) Label(l Label) Label {
	if !l.Color.IsSet() {
		l = l.WithColor(r.colors.Next())
	}
	r.labels = append(r.labels, l)
	return l
}

// AddLabel appends a label exactly as given, without color assignment.
func (r *Report) AddLabel(l Label) {
	r.labels = append(r.labels, l)
}

// Color returns one color from the report's shared generator and
// advances it, so a caller can reuse a single color across related
// labels (say, a matched pair of brackets).
func (r *Report) Color() Color {
	return r.colors.Next()
}

// AddNote appends a footer note line.
func (r *Report) AddNote(note string) {
	r.notes = append(r.notes, note)
}

// AddHelp appends a footer help line.
func (r *Report) AddHelp(help string) {
	r.helps = append(r.helps, help)
}

// Labels returns the accumulated labels in insertion order.
func (r *Report) Labels() []Label {
	return r.labels
}

// Render runs the layout and rendering pipeline once and writes the
// report to w. Identical inputs produce byte-identical output across
// repeated calls.
func (r *Report) Render(w io.Writer) error {
	if r.ix == nil {
		r.ix = source.New(r.src.Text())
	}

	// первичный диапазон — неявная нулевая метка без сообщения
	marks := []layout.Mark{{Start: r.start, End: r.end, Seq: 0}}
	priSGR := kindSGR(r.kind)
	if r.priColor.IsSet() {
		priSGR = enabled(r.priColor.sgr())
	}
	sgr := []*color.Color{priSGR}
	for i, l := range r.labels {
		if l.Path != "" && l.Path != r.src.Name() {
			// метки других файлов не рисуем
			continue
		}
		marks = append(marks, layout.Mark{
			Start:   clampOffset(l.Start),
			End:     clampOffset(l.End),
			Message: l.Message,
			Order:   l.Order,
			Seq:     i + 1,
		})
		sgr = append(sgr, enabled(l.Color.sgr()))
	}

	plan := layout.BuildPlan(r.ix, marks)
	loc := r.ix.Locate(r.start)

	return render.Render(w, plan, loc, render.Options{
		Name:      r.src.Name(),
		Code:      r.code,
		KindWord:  r.kind.Word(),
		KindColor: kindSGR(r.kind),
		Message:   r.message,
		Notes:     r.notes,
		Helps:     r.helps,
		Colors:    sgr,
		UseColor:  r.config.Color,
		Compact:   r.config.Compact,
	})
}

// Print renders the report to standard output.
func (r *Report) Print() error {
	return r.Render(os.Stdout)
}

// Eprint renders the report to standard error.
func (r *Report) Eprint() error {
	return r.Render(os.Stderr)
}

func kindSGR(k Kind) *color.Color {
	return enabled(k.DefaultColor().sgr())
}

// enabled forces SGR emission regardless of whether stdout is a
// terminal; the Config.Color toggle is the only switch.
func enabled(c *color.Color) *color.Color {
	if c != nil {
		c.EnableColor()
	}
	return c
}
