package pinpoint

import (
	"fmt"
	"strings"
)

// Label is an immutable annotated byte range: [Start, End) in the source,
// an optional message, color, path override and explicit order key. The
// zero value of every optional field means "not set". Label is comparable;
// two labels are equal only when every field matches, path included, so
// map-key hashing distinguishes same ranges in different files.
//
// The With* methods merge one override over a copy and leave the receiver
// untouched.
type Label struct {
	Start, End int
	Message    string
	Color      Color
	Path       string
	Order      int
}

// NewLabel returns a bare label over [start, end). Offsets are never
// rejected here: inverted ranges collapse to a zero-width range at the
// smaller offset, and out-of-source offsets are clamped during layout.
func NewLabel(start, end int) Label {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return Label{Start: start, End: end}
}

// WithMessage returns a copy carrying the message.
func (l Label) WithMessage(msg string) Label {
	l.Message = msg
	return l
}

// WithColor returns a copy carrying the color.
func (l Label) WithColor(c Color) Label {
	l.Color = c
	return l
}

// WithPath returns a copy targeting another display path.
func (l Label) WithPath(path string) Label {
	l.Path = path
	return l
}

// WithOrder returns a copy carrying an explicit order key.
func (l Label) WithOrder(order int) Label {
	l.Order = order
	return l
}

// String renders the canonical form: Label(start, end[, message="..."]).
func (l Label) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Label(%d, %d", l.Start, l.End)
	if l.Path != "" {
		fmt.Fprintf(&b, ", path=%q", l.Path)
	}
	if l.Message != "" {
		fmt.Fprintf(&b, ", message=%q", l.Message)
	}
	if l.Color.IsSet() {
		fmt.Fprintf(&b, ", color=%s", l.Color)
	}
	if l.Order != 0 {
		fmt.Fprintf(&b, ", order=%d", l.Order)
	}
	b.WriteString(")")
	return b.String()
}
