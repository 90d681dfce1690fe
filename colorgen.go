package pinpoint

// paletteRotation is the fixed palette a fresh generator walks before
// falling back to indexed colors. All entries are pairwise distinct.
var paletteRotation = []string{
	"red", "green", "yellow", "blue", "magenta", "cyan",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan",
}

// ColorGenerator deterministically produces an unbounded sequence of
// colors for auto-assigned labels. The first len(paletteRotation)+216
// draws are pairwise distinct. Generators share no state; restart by
// constructing a new one.
type ColorGenerator struct {
	n int
}

// NewColorGenerator returns a fresh generator.
func NewColorGenerator() *ColorGenerator {
	return &ColorGenerator{}
}

// Next returns one color and advances the cursor. After the named palette
// is exhausted it rotates through the 6x6x6 color cube on a stride
// coprime with 216, so the cube contributes 216 further distinct values.
func (g *ColorGenerator) Next() Color {
	n := g.n
	g.n++
	if n < len(paletteRotation) {
		c, _ := Named(paletteRotation[n])
		return c
	}
	step := n - len(paletteRotation)
	return Indexed(uint8(16 + (step*17)%216))
}
