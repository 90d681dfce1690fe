// Package layout turns a set of byte-range marks over an indexed source
// into an ordered per-line render plan: which lines to show, where each
// mark's ticks sit, and which vertical lane each connector occupies.
//
// The engine is total over any mark set: offsets are clamped into the
// source, inverted ranges collapse to zero width, and nothing here can
// fail. Cost is linear in the displayed text plus quadratic in the number
// of connectors sharing a line (the pairwise containment check).
package layout

import (
	"sort"

	"pinpoint/internal/source"
)

// Mark is one annotated range reduced to flat values: the byte range, the
// message (empty for marks that only steer line selection, such as the
// report's primary span), an explicit order key and the insertion
// sequence. Colors stay with the caller, keyed by mark index.
type Mark struct {
	Start, End uint32
	Message    string
	Order      int
	Seq        int
}

// TickKind distinguishes the glyph drawn in a line's tick row.
type TickKind uint8

const (
	// TickAnchor marks the column a connector attaches to.
	TickAnchor TickKind = iota
	// TickStart marks the first column of a mark continuing onto later lines.
	TickStart
	// TickBody is the continuation rail at the margin of a fully interior
	// line of a multi-line mark.
	TickBody
)

// Tick is a single glyph position in a line's tick row.
type Tick struct {
	Col  uint32 // 0-based byte column within the line
	Kind TickKind
	Mark int
}

// Connector is one label message attached beneath a line. Connectors are
// stored in lane order: index 0 is drawn directly under the tick row,
// deeper lanes below it.
type Connector struct {
	Mark    int
	Anchor  uint32 // 0-based byte column of the branch glyph
	Message string
}

// Line is the render plan for one displayed source line.
type Line struct {
	Num        uint32
	Text       string
	Ticks      []Tick
	Connectors []Connector
}

// Plan is the full ordered render plan. Lines form one contiguous block;
// gaps between touched lines are padded so the diagram's left rail stays
// unbroken.
type Plan struct {
	Lines       []Line
	First, Last uint32
}

// part is a mark's connector clipped to a single line.
type part struct {
	mark     int
	colStart uint32
	colEnd   uint32
	anchor   uint32
	order    int
	seq      int
	depth    int
}

// BuildPlan computes the render plan for marks over ix.
func BuildPlan(ix *source.Index, marks []Mark) *Plan {
	if len(marks) == 0 {
		return &Plan{First: 1, Last: 1, Lines: []Line{{Num: 1, Text: ix.LineText(1)}}}
	}

	clamped := make([]Mark, len(marks))
	copy(clamped, marks)
	for i := range clamped {
		clamped[i].Start = ix.Clamp(clamped[i].Start)
		clamped[i].End = ix.Clamp(clamped[i].End)
		if clamped[i].End < clamped[i].Start {
			clamped[i].End = clamped[i].Start
		}
	}

	first, last := touchedBlock(ix, clamped)

	plan := &Plan{First: first, Last: last}
	for num := first; num <= last; num++ {
		plan.Lines = append(plan.Lines, buildLine(ix, clamped, num))
	}
	return plan
}

// touchedBlock returns the smallest contiguous line range covering every
// mark.
func touchedBlock(ix *source.Index, marks []Mark) (first, last uint32) {
	for i, m := range marks {
		lo, hi := markLines(ix, m)
		if i == 0 || lo < first {
			first = lo
		}
		if i == 0 || hi > last {
			last = hi
		}
	}
	return first, last
}

func markLines(ix *source.Index, m Mark) (lo, hi uint32) {
	lo = ix.LineOf(m.Start)
	hi = lo
	if m.End > m.Start {
		hi = ix.LineOf(m.End - 1)
	}
	return lo, hi
}

func buildLine(ix *source.Index, marks []Mark, num uint32) Line {
	ls, _ := ix.LineSpan(num)
	line := Line{Num: num, Text: ix.LineText(num)}

	var parts []part
	for i, m := range marks {
		lo, hi := markLines(ix, m)
		if num < lo || num > hi {
			continue
		}

		switch {
		case lo == hi:
			// целиком на одной строке
			anchor := m.Start - ls
			if m.End > m.Start {
				anchor = m.End - 1 - ls
			}
			line.Ticks = append(line.Ticks, Tick{Col: anchor, Kind: TickAnchor, Mark: i})
			if m.Message != "" {
				parts = append(parts, part{
					mark:     i,
					colStart: m.Start - ls,
					colEnd:   m.End - ls,
					anchor:   anchor,
					order:    m.Order,
					seq:      m.Seq,
				})
			}
		case num == lo:
			line.Ticks = append(line.Ticks, Tick{Col: m.Start - ls, Kind: TickStart, Mark: i})
		case num == hi:
			anchor := m.End - 1 - ls
			line.Ticks = append(line.Ticks, Tick{Col: anchor, Kind: TickAnchor, Mark: i})
			if m.Message != "" {
				parts = append(parts, part{
					mark:     i,
					colStart: 0,
					colEnd:   m.End - ls,
					anchor:   anchor,
					order:    m.Order,
					seq:      m.Seq,
				})
			}
		default:
			line.Ticks = append(line.Ticks, Tick{Col: 0, Kind: TickBody, Mark: i})
		}
	}

	dedupTicks(&line.Ticks, marks)
	line.Connectors = assignLanes(parts, marks)
	return line
}

// dedupTicks orders ticks by column and collapses ticks sharing one
// column. Ticks of messaged marks win over message-only steering marks so
// the glyph carries the visible label's color.
func dedupTicks(ticks *[]Tick, marks []Mark) {
	sort.SliceStable(*ticks, func(i, j int) bool {
		a, b := (*ticks)[i], (*ticks)[j]
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		am := marks[a.Mark].Message != ""
		bm := marks[b.Mark].Message != ""
		return am && !bm
	})
	out := (*ticks)[:0]
	for _, t := range *ticks {
		if n := len(out); n > 0 && out[n-1].Col == t.Col {
			continue
		}
		out = append(out, t)
	}
	*ticks = out
}

// assignLanes orders a line's connectors. The base order is left to right
// by start column, tie-broken by end column, explicit order key and
// insertion sequence. A part whose span strictly contains another's is
// pushed to a strictly deeper lane, the way outer brackets close last.
func assignLanes(parts []part, marks []Mark) []Connector {
	if len(parts) == 0 {
		return nil
	}

	sort.SliceStable(parts, func(i, j int) bool {
		a, b := parts[i], parts[j]
		if a.colStart != b.colStart {
			return a.colStart < b.colStart
		}
		if a.colEnd != b.colEnd {
			return a.colEnd < b.colEnd
		}
		if a.order != b.order {
			return a.order < b.order
		}
		return a.seq < b.seq
	})

	// глубина: 1 + максимум по строго вложенным частям; обрабатываем по
	// возрастанию ширины, вложенные всегда уже объемлющих
	byWidth := make([]int, len(parts))
	for i := range byWidth {
		byWidth[i] = i
	}
	sort.SliceStable(byWidth, func(i, j int) bool {
		a, b := parts[byWidth[i]], parts[byWidth[j]]
		return a.colEnd-a.colStart < b.colEnd-b.colStart
	})
	for _, i := range byWidth {
		for j := range parts {
			if i == j {
				continue
			}
			if contains(parts[i], parts[j]) && parts[j].depth >= parts[i].depth {
				parts[i].depth = parts[j].depth + 1
			}
		}
	}

	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].depth < parts[j].depth
	})

	out := make([]Connector, len(parts))
	for lane, p := range parts {
		out[lane] = Connector{
			Mark:    p.mark,
			Anchor:  p.anchor,
			Message: marks[p.mark].Message,
		}
	}
	return out
}

// contains reports whether a strictly contains b by column span.
func contains(a, b part) bool {
	if a.colStart > b.colStart || b.colEnd > a.colEnd {
		return false
	}
	return a.colStart < b.colStart || b.colEnd < a.colEnd
}
