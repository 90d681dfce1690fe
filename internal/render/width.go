package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// expandTabs replaces each tab with a fixed run of spaces so that byte
// column arithmetic and display width agree.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// dispCol converts a 0-based byte column in line into a display column,
// accounting for tabs and wide runes. Columns past the end of the line
// extend one cell per byte (clamped ticks may sit just past the text).
func dispCol(line string, byteCol uint32) int {
	n := int(byteCol)
	if n <= len(line) {
		return runewidth.StringWidth(expandTabs(line[:n]))
	}
	return runewidth.StringWidth(expandTabs(line)) + n - len(line)
}
