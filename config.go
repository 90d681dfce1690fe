package pinpoint

// Config holds the display toggles consumed by the renderer. The set is
// deliberately closed: Color controls ANSI escape emission, Compact drops
// the blank spacer rows (and the closing rail) while preserving the
// column alignment of every rail and branch.
type Config struct {
	Color   bool
	Compact bool
}

// DefaultConfig enables color and disables compact mode.
func DefaultConfig() Config {
	return Config{Color: true}
}
