package pinpoint

import "testing"

func TestLabelEquality(t *testing.T) {
	a := NewLabel(0, 10).WithMessage("Test")
	b := NewLabel(0, 10).WithMessage("Test")
	if a != b {
		t.Error("Expected identical labels to compare equal")
	}
	if a == b.WithMessage("Other") {
		t.Error("Expected labels with different messages to differ")
	}
	if a == b.WithPath("other.py") {
		t.Error("Expected labels with different paths to differ")
	}
}

func TestLabelWithCopies(t *testing.T) {
	base := NewLabel(0, 10)
	derived := base.WithMessage("msg").WithOrder(3)
	if base.Message != "" || base.Order != 0 {
		t.Error("WithMessage/WithOrder mutated the receiver")
	}
	if derived.Message != "msg" || derived.Order != 3 {
		t.Errorf("derived label not updated: %+v", derived)
	}
	if derived.Start != 0 || derived.End != 10 {
		t.Errorf("derived label lost its range: %+v", derived)
	}
}

func TestLabelClamping(t *testing.T) {
	l := NewLabel(-5, 3)
	if l.Start != 0 || l.End != 3 {
		t.Errorf("negative start not clamped: %+v", l)
	}
	l = NewLabel(7, 2)
	if l.Start != 7 || l.End != 7 {
		t.Errorf("end < start not collapsed: %+v", l)
	}
}

func TestLabelString(t *testing.T) {
	cases := []struct {
		label Label
		want  string
	}{
		{NewLabel(0, 10), "Label(0, 10)"},
		{NewLabel(0, 10).WithMessage("Test"), `Label(0, 10, message="Test")`},
		{NewLabel(2, 4).WithPath("a.py").WithMessage("x"), `Label(2, 4, path="a.py", message="x")`},
		{NewLabel(1, 2).WithColor(Indexed(9)).WithOrder(-1), "Label(1, 2, color=Color(9), order=-1)"},
	}
	for _, c := range cases {
		if got := c.label.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestLabelHashing(t *testing.T) {
	set := make(map[Label]bool)
	for _, l := range []Label{
		NewLabel(0, 10),
		NewLabel(0, 10).WithMessage("m"),
		NewLabel(0, 10).WithPath("a.py"),
		NewLabel(0, 10).WithColor(RGB(1, 2, 3)),
	} {
		set[l] = true
	}
	if len(set) != 4 {
		t.Errorf("Expected 4 distinct labels as map keys, got %d", len(set))
	}
}
