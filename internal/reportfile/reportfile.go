// Package reportfile loads report descriptions from disk: TOML for
// hand-written files and msgpack for diagnostics dumped by tooling. Both
// carry the same schema and are folded into a pinpoint.Report.
package reportfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"

	"pinpoint"
)

// Current schema version - increment when the file format changes.
const schemaVersion = 1

// File is the on-disk description of one report.
type File struct {
	Schema int         `toml:"schema" msgpack:"schema"`
	Source SourceSpec  `toml:"source" msgpack:"source"`
	Report ReportSpec  `toml:"report" msgpack:"report"`
	Labels []LabelSpec `toml:"labels" msgpack:"labels"`
	Notes  []string    `toml:"notes" msgpack:"notes"`
	Helps  []string    `toml:"helps" msgpack:"helps"`
}

// SourceSpec names the annotated text: either a path to read, or inline
// text with an optional display name.
type SourceSpec struct {
	Path string `toml:"path" msgpack:"path"`
	Text string `toml:"text" msgpack:"text"`
	Name string `toml:"name" msgpack:"name"`
}

// ReportSpec is the report header: primary span, message, kind, code and
// display toggles.
type ReportSpec struct {
	Start   int    `toml:"start" msgpack:"start"`
	End     int    `toml:"end" msgpack:"end"`
	Message string `toml:"message" msgpack:"message"`
	Kind    string `toml:"kind" msgpack:"kind"`
	Code    string `toml:"code" msgpack:"code"`
	Color   string `toml:"color" msgpack:"color"`
	Compact bool   `toml:"compact" msgpack:"compact"`
}

// LabelSpec is one label row. Color accepts a name, a decimal palette
// index or "#rrggbb"; empty means generator-assigned.
type LabelSpec struct {
	Start   int    `toml:"start" msgpack:"start"`
	End     int    `toml:"end" msgpack:"end"`
	Message string `toml:"message" msgpack:"message"`
	Color   string `toml:"color" msgpack:"color"`
	Path    string `toml:"path" msgpack:"path"`
	Order   int    `toml:"order" msgpack:"order"`
}

// Load reads and decodes a report description, switching on the file
// extension: .toml, or .msgpack/.mpk.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file %q: %w", path, err)
	}

	var f File
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", path, err)
		}
	case ".msgpack", ".mpk":
		if err := msgpack.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported report file extension %q", ext)
	}

	if f.Schema != schemaVersion {
		return nil, fmt.Errorf("%q: unsupported schema %d (want %d)", path, f.Schema, schemaVersion)
	}
	return &f, nil
}

// Build folds a decoded description into a renderable Report. The color
// toggle comes from the caller (CLI flag or terminal detection); compact
// mode comes from the file.
func Build(f *File, useColor bool) (*pinpoint.Report, error) {
	src, err := f.Source.open()
	if err != nil {
		return nil, err
	}

	r := pinpoint.New(src, f.Report.Start, f.Report.End).
		WithMessage(f.Report.Message).
		WithKind(pinpoint.KindFromString(f.Report.Kind)).
		WithCode(f.Report.Code).
		WithConfig(pinpoint.Config{Color: useColor, Compact: f.Report.Compact})

	if f.Report.Color != "" {
		c, err := pinpoint.ParseColor(f.Report.Color)
		if err != nil {
			return nil, fmt.Errorf("report color: %w", err)
		}
		r.WithColor(c)
	}

	for _, ls := range f.Labels {
		l := pinpoint.NewLabel(ls.Start, ls.End).
			WithMessage(ls.Message).
			WithPath(ls.Path).
			WithOrder(ls.Order)
		if ls.Color != "" {
			c, err := pinpoint.ParseColor(ls.Color)
			if err != nil {
				return nil, fmt.Errorf("label [%d, %d): %w", ls.Start, ls.End, err)
			}
			l = l.WithColor(c)
		}
		r.Label(l)
	}
	for _, note := range f.Notes {
		r.AddNote(note)
	}
	for _, help := range f.Helps {
		r.AddHelp(help)
	}
	return r, nil
}

func (s SourceSpec) open() (pinpoint.Source, error) {
	switch {
	case s.Path != "" && s.Text != "":
		return pinpoint.Source{}, fmt.Errorf("source has both path and text")
	case s.Path != "":
		return pinpoint.FromFile(s.Path)
	case s.Name != "":
		return pinpoint.FromReader(s.Name, strings.NewReader(s.Text))
	default:
		return pinpoint.FromString(s.Text), nil
	}
}
