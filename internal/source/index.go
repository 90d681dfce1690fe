// Package source maps byte offsets in a source text onto human-readable
// line and column positions.
//
// An Index is built once per source and is immutable afterwards, so it can
// be shared across repeated renders of the same text. Offsets past the end
// of the text are clamped to the last valid position instead of being
// rejected; layout treats them as a totality invariant, not an error.
package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Index holds the source text together with the offsets of every '\n'.
type Index struct {
	content []byte
	lineIdx []uint32 // позиции '\n' в content
}

// LineCol is a 1-based position in the source.
type LineCol struct {
	Line uint32
	Col  uint32
}

// New builds an Index over content. The content is not copied; callers
// must not mutate it afterwards.
func New(content []byte) *Index {
	return &Index{
		content: content,
		lineIdx: buildLineIndex(content),
	}
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16)
	for i, b := range content {
		if b == '\n' {
			idx, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("line index overflow: %w", err))
			}
			out = append(out, idx)
		}
	}
	return out
}

// Len returns the length of the source in bytes.
func (ix *Index) Len() uint32 {
	n, err := safecast.Conv[uint32](len(ix.content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}

// LineCount returns the number of lines. A trailing '\n' opens one more
// (empty) line, matching how editors number the position after it.
func (ix *Index) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(ix.lineIdx))
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return n + 1
}

// Clamp pulls an offset back into [0, Len].
func (ix *Index) Clamp(off uint32) uint32 {
	if n := ix.Len(); off > n {
		return n
	}
	return off
}

// Locate converts a byte offset into a 1-based line/column pair, clamping
// offsets past the end of the text. A '\n' belongs to the line it
// terminates (its column is one past the last visible character).
func (ix *Index) Locate(off uint32) LineCol {
	off = ix.Clamp(off)
	line := ix.LineOf(off)
	start, _ := ix.LineSpan(line)
	return LineCol{Line: line, Col: off - start + 1}
}

// LineOf returns the 1-based line number containing the (clamped) offset.
func (ix *Index) LineOf(off uint32) uint32 {
	off = ix.Clamp(off)
	// бинпоиск: количество '\n' строго до off
	lo, hi := 0, len(ix.lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if ix.lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line, err := safecast.Conv[uint32](lo + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return line
}

// LineSpan returns the byte range [start, end) of a 1-based line. The end
// excludes the terminating '\n'. Out-of-range line numbers collapse to an
// empty span at the nearest boundary.
func (ix *Index) LineSpan(line uint32) (start, end uint32) {
	if line == 0 {
		return 0, 0
	}
	count := ix.LineCount()
	if line > count {
		n := ix.Len()
		return n, n
	}
	if line == 1 {
		start = 0
	} else {
		start = ix.lineIdx[line-2] + 1
	}
	if int(line-1) < len(ix.lineIdx) {
		end = ix.lineIdx[line-1]
	} else {
		end = ix.Len()
	}
	return start, end
}

// LineText returns the text of a 1-based line without its terminator.
func (ix *Index) LineText(line uint32) string {
	start, end := ix.LineSpan(line)
	return string(ix.content[start:end])
}
