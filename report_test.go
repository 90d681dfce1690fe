package pinpoint

import (
	"bytes"
	"strings"
	"testing"
)

func renderToString(t *testing.T, r *Report) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func plain() Config {
	return Config{Color: false}
}

func TestRenderSingleLabel(t *testing.T) {
	src, err := FromReader("test.py", strings.NewReader("print 'Hello, World!'\n"))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	r := New(src, 0, 5).
		WithMessage("Bad function").
		WithConfig(plain())
	r.Label(NewLabel(0, 5).WithMessage("Invalid command"))

	want := "Error: Bad function\n" +
		"   ╭─[ test.py:1:1 ]\n" +
		"   │\n" +
		" 1 │ print 'Hello, World!'\n" +
		"   │     │  \n" +
		"   │     ╰── Invalid command\n" +
		"───╯\n"

	if got := renderToString(t, r); got != want {
		t.Errorf("single-label output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTwoLabelsSharedColor(t *testing.T) {
	src, err := FromReader("example.lox", strings.NewReader(`print("Hello World!");`))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	r := New(src, 5, 6).
		WithKind(KindWarning).
		WithMessage("Print command does not require parenthesis").
		WithConfig(plain())
	shared := r.Color()
	r.Label(NewLabel(5, 6).WithMessage("Parenthesis start here").WithColor(shared))
	r.Label(NewLabel(20, 21).WithMessage("And end here").WithColor(shared))

	want := "Warning: Print command does not require parenthesis\n" +
		"   ╭─[ example.lox:1:6 ]\n" +
		"   │\n" +
		" 1 │ print(\"Hello World!\");\n" +
		"   │      │              │  \n" +
		"   │      ╰──────────────┼── Parenthesis start here\n" +
		"   │                     │  \n" +
		"   │                     ╰── And end here\n" +
		"───╯\n"

	if got := renderToString(t, r); got != want {
		t.Errorf("two-label output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderCompact(t *testing.T) {
	src, err := FromReader("example.lox", strings.NewReader(`print("Hello World!");`))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	r := New(src, 5, 6).
		WithKind(KindWarning).
		WithMessage("Print command does not require parenthesis").
		WithConfig(Config{Color: false, Compact: true})
	shared := r.Color()
	r.Label(NewLabel(5, 6).WithMessage("Parenthesis start here").WithColor(shared))
	r.Label(NewLabel(20, 21).WithMessage("And end here").WithColor(shared))

	// компактный режим: без пустой рейки, тиков, распорок и замыкающей рейки
	want := "Warning: Print command does not require parenthesis\n" +
		"   ╭─[ example.lox:1:6 ]\n" +
		" 1 │print(\"Hello World!\");\n" +
		"   │     ╰──────────────┼─ Parenthesis start here\n" +
		"   │                    ╰─ And end here\n"

	if got := renderToString(t, r); got != want {
		t.Errorf("compact output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderNestedLanes(t *testing.T) {
	src := FromString("abcdefghij")

	r := New(src, 0, 8).
		WithMessage("nesting").
		WithConfig(plain())
	r.Label(NewLabel(0, 8).WithMessage("outer"))
	r.Label(NewLabel(2, 5).WithMessage("inner"))

	// содержащая метка уходит строго ниже содержащейся
	want := "Error: nesting\n" +
		"   ╭─[ <string>:1:1 ]\n" +
		"   │\n" +
		" 1 │ abcdefghij\n" +
		"   │     │  │  \n" +
		"   │     ╰──┼── inner\n" +
		"   │        │  \n" +
		"   │        ╰── outer\n" +
		"───╯\n"

	if got := renderToString(t, r); got != want {
		t.Errorf("nested-lane output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderZeroWidthLabel(t *testing.T) {
	src := FromString("hello")

	r := New(src, 0, 5).WithMessage("z").WithConfig(plain())
	r.Label(NewLabel(2, 2).WithMessage("here"))

	want := "Error: z\n" +
		"   ╭─[ <string>:1:1 ]\n" +
		"   │\n" +
		" 1 │ hello\n" +
		"   │   │ │  \n" +
		"   │   ╰── here\n" +
		"───╯\n"

	if got := renderToString(t, r); got != want {
		t.Errorf("zero-width output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMultiLineLabel(t *testing.T) {
	src := FromString("one\ntwo\nthree\n")

	r := New(src, 0, 1).WithMessage("multiline").WithConfig(plain())
	r.Label(NewLabel(1, 10).WithMessage("spans"))

	want := "Error: multiline\n" +
		"   ╭─[ <string>:1:1 ]\n" +
		"   │\n" +
		" 1 │ one\n" +
		"   │ │╭  \n" +
		" 2 │ two\n" +
		"   │ │  \n" +
		" 3 │ three\n" +
		"   │  │  \n" +
		"   │  ╰── spans\n" +
		"───╯\n"

	if got := renderToString(t, r); got != want {
		t.Errorf("multi-line output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderClampsPastEnd(t *testing.T) {
	src := FromString("abc")

	r := New(src, 0, 1).WithMessage("oops").WithConfig(plain())
	r.Label(NewLabel(2, 99).WithMessage("past end"))

	want := "Error: oops\n" +
		"   ╭─[ <string>:1:1 ]\n" +
		"   │\n" +
		" 1 │ abc\n" +
		"   │ │ │  \n" +
		"   │   ╰── past end\n" +
		"───╯\n"

	if got := renderToString(t, r); got != want {
		t.Errorf("clamped output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderNotesAndHelps(t *testing.T) {
	src := FromString("x")

	r := New(src, 0, 1).WithMessage("m").WithConfig(plain())
	r.AddHelp("try harder")
	r.AddNote("first note")
	r.AddNote("second note")

	got := renderToString(t, r)

	// примечания идут раньше подсказок, каждое в порядке добавления
	iFirst := strings.Index(got, "Note: first note")
	iSecond := strings.Index(got, "Note: second note")
	iHelp := strings.Index(got, "Help: try harder")
	if iFirst < 0 || iSecond < 0 || iHelp < 0 {
		t.Fatalf("missing footer lines in output:\n%s", got)
	}
	if !(iFirst < iSecond && iSecond < iHelp) {
		t.Errorf("footer order wrong (notes before helps expected):\n%s", got)
	}
}

func TestRenderCodePrefix(t *testing.T) {
	src := FromString("x")

	r := New(src, 0, 1).WithMessage("m").WithCode("E042").WithConfig(plain())
	got := renderToString(t, r)
	if !strings.HasPrefix(got, "[E042] Error: m\n") {
		t.Errorf("expected code prefix in header, got:\n%s", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	src := FromString("print 'Hello, World!'\n")

	r := New(src, 0, 5).WithMessage("Bad function").WithConfig(plain())
	r.Label(NewLabel(0, 5).WithMessage("Invalid command"))
	r.Label(NewLabel(6, 21).WithMessage("Argument"))

	first := renderToString(t, r)
	for i := 0; i < 3; i++ {
		if again := renderToString(t, r); again != first {
			t.Fatalf("render %d diverged from the first", i+2)
		}
	}
}

func TestRenderOtherFileLabelsSkipped(t *testing.T) {
	src, err := FromReader("main.py", strings.NewReader("a\n"))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	r := New(src, 0, 1).WithMessage("m").WithConfig(plain())
	r.Label(NewLabel(0, 1).WithMessage("shown").WithPath("main.py"))
	r.Label(NewLabel(0, 1).WithMessage("hidden").WithPath("other.py"))

	got := renderToString(t, r)
	if !strings.Contains(got, "shown") {
		t.Errorf("label for the rendered file missing:\n%s", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("label for another file leaked into output:\n%s", got)
	}
}

func TestRenderColorEscapes(t *testing.T) {
	src := FromString("x")

	r := New(src, 0, 1).WithMessage("m") // цвет включён по умолчанию
	r.Label(NewLabel(0, 1).WithMessage("lbl").WithColor(mustNamed("red")))

	got := renderToString(t, r)
	if !strings.Contains(got, "\x1b[") {
		t.Error("expected SGR escapes with Config.Color enabled")
	}

	r2 := New(src, 0, 1).WithMessage("m").WithConfig(plain())
	r2.Label(NewLabel(0, 1).WithMessage("lbl").WithColor(mustNamed("red")))
	if strings.Contains(renderToString(t, r2), "\x1b[") {
		t.Error("expected no SGR escapes with Config.Color disabled")
	}
}

func TestKindWords(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		word string
	}{
		{"", KindError, "Error"},
		{"error", KindError, "Error"},
		{"warning", KindWarning, "Warning"},
		{"warn", KindWarning, "Warning"},
		{"advice", KindAdvice, "Advice"},
		{"fatal", KindOther, "Report"},
	}
	for _, c := range cases {
		k := KindFromString(c.in)
		if k != c.kind {
			t.Errorf("KindFromString(%q) = %v, want %v", c.in, k, c.kind)
		}
		if k.Word() != c.word {
			t.Errorf("Kind(%q).Word() = %q, want %q", c.in, k.Word(), c.word)
		}
	}
}
