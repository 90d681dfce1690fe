package pinpoint

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Source is a fully read source text together with its display name. It
// is the only component with a user-visible failure path: acquisition
// errors (missing file, undecodable bytes) surface before any layout
// begins.
type Source struct {
	name string
	text []byte
}

// FromString wraps raw source text. The displayed name is "<string>".
func FromString(text string) Source {
	return Source{name: "<string>", text: []byte(text)}
}

// FromFile reads a file fully; the path becomes the displayed name.
func FromFile(path string) (Source, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	if !utf8.Valid(content) {
		return Source{}, fmt.Errorf("file %q is not valid UTF-8", path)
	}
	return Source{name: path, text: content}, nil
}

// FromReader drains a named stream; the name becomes the displayed name.
func FromReader(name string, r io.Reader) (Source, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read source %q: %w", name, err)
	}
	if !utf8.Valid(content) {
		return Source{}, fmt.Errorf("source %q is not valid UTF-8", name)
	}
	if name == "" {
		name = "<string>"
	}
	return Source{name: name, text: content}, nil
}

// Name returns the display name used in the report's location line.
func (s Source) Name() string {
	return s.name
}

// Text returns the raw source bytes.
func (s Source) Text() []byte {
	return s.text
}
