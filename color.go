package pinpoint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type colorKind uint8

const (
	colorUnset colorKind = iota
	colorNamed
	colorIndexed
	colorRGB
)

// Color is a closed tagged value: a named terminal color, a palette index,
// or a 24-bit RGB triple. The zero value means "no color". Color is
// comparable, so equality and map-key hashing follow the variant and its
// payload exactly.
type Color struct {
	kind    colorKind
	name    string
	index   uint8
	r, g, b uint8
}

// Named colors accepted by Named and ParseColor, in the order used to map
// them onto SGR attributes.
var namedColors = map[string][]color.Attribute{
	"primary":        nil, // терминальный цвет по умолчанию
	"black":          {color.FgBlack},
	"red":            {color.FgRed},
	"green":          {color.FgGreen},
	"yellow":         {color.FgYellow},
	"blue":           {color.FgBlue},
	"magenta":        {color.FgMagenta},
	"cyan":           {color.FgCyan},
	"white":          {color.FgWhite},
	"bright-black":   {color.FgHiBlack},
	"bright-red":     {color.FgHiRed},
	"bright-green":   {color.FgHiGreen},
	"bright-yellow":  {color.FgHiYellow},
	"bright-blue":    {color.FgHiBlue},
	"bright-magenta": {color.FgHiMagenta},
	"bright-cyan":    {color.FgHiCyan},
	"bright-white":   {color.FgHiWhite},
}

// Named returns the color with the given name ("red", "bright-cyan", ...).
func Named(name string) (Color, error) {
	if _, ok := namedColors[name]; !ok {
		return Color{}, fmt.Errorf("unknown color: %s", name)
	}
	return Color{kind: colorNamed, name: name}, nil
}

// Indexed returns a color from the terminal's 256-color palette.
func Indexed(index uint8) Color {
	return Color{kind: colorIndexed, index: index}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// ParseColor accepts a color name, a decimal palette index, or a
// "#rrggbb" triple.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if c, err := Named(s); err == nil {
		return c, nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Indexed(uint8(n)), nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("bad hex color %q: %w", s, err)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return Color{}, fmt.Errorf("unknown color: %s", s)
}

// IsSet reports whether the color carries a value.
func (c Color) IsSet() bool {
	return c.kind != colorUnset
}

// String renders the canonical display form: Color('red'), Color(1) or
// Color.rgb(r, g, b).
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return fmt.Sprintf("Color('%s')", c.name)
	case colorIndexed:
		return fmt.Sprintf("Color(%d)", c.index)
	case colorRGB:
		return fmt.Sprintf("Color.rgb(%d, %d, %d)", c.r, c.g, c.b)
	}
	return "Color(unset)"
}

// sgr converts the color into a fatih/color attribute sequence. Indexed
// and RGB variants ride on the multi-parameter forms 38;5;n and
// 38;2;r;g;b. Unset and "primary" yield nil (no wrapping).
func (c Color) sgr() *color.Color {
	switch c.kind {
	case colorNamed:
		attrs := namedColors[c.name]
		if attrs == nil {
			return nil
		}
		return color.New(attrs...)
	case colorIndexed:
		return color.New(38, 5, color.Attribute(c.index))
	case colorRGB:
		return color.New(38, 2, color.Attribute(c.r), color.Attribute(c.g), color.Attribute(c.b))
	}
	return nil
}
