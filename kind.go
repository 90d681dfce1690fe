package pinpoint

// Kind classifies a report. The set is closed; strings coming from the
// outside are folded onto it by KindFromString, and anything unrecognized
// becomes KindOther with a generic header word. Rendering never fails on
// a kind.
type Kind uint8

const (
	KindError Kind = iota
	KindWarning
	KindAdvice
	KindOther
)

// kindTable maps every kind onto its header word and default color. Keep
// it exhaustive: Word and DefaultColor index it by the constants above.
var kindTable = [...]struct {
	word  string
	color Color
}{
	KindError:   {"Error", mustNamed("red")},
	KindWarning: {"Warning", mustNamed("yellow")},
	KindAdvice:  {"Advice", Indexed(147)},
	KindOther:   {"Report", mustNamed("primary")},
}

func mustNamed(name string) Color {
	c, err := Named(name)
	if err != nil {
		panic(err)
	}
	return c
}

// KindFromString folds a free-form kind string onto the closed set. The
// empty string means the default, KindError.
func KindFromString(s string) Kind {
	switch s {
	case "", "error":
		return KindError
	case "warning", "warn":
		return KindWarning
	case "advice":
		return KindAdvice
	default:
		return KindOther
	}
}

// Word returns the header word for the kind.
func (k Kind) Word() string {
	if int(k) >= len(kindTable) {
		k = KindOther
	}
	return kindTable[k].word
}

// DefaultColor returns the color used for the kind's header word and for
// the implicit primary label.
func (k Kind) DefaultColor() Color {
	if int(k) >= len(kindTable) {
		k = KindOther
	}
	return kindTable[k].color
}
