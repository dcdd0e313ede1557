// Package render prints loaded documents and tables for the filekit CLI.
package render

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for unknown or inapplicable formats.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is an output format.
type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	CSV   Format = "csv"
	Table Format = "table"
)

var formats = []Format{JSON, YAML, CSV, Table}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all output format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

type options struct {
	indent int
	border BorderStyle
}

// Option configures rendering.
type Option func(*options)

// WithIndent sets the JSON/YAML indentation width.
// Without it, JSON is compact and YAML uses its default indent.
func WithIndent(n int) Option {
	return func(o *options) { o.indent = n }
}

// WithBorder sets the table border style. Default: BorderRounded.
func WithBorder(b BorderStyle) Option {
	return func(o *options) { o.border = b }
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Write renders a single value as JSON or YAML.
func Write(w io.Writer, f Format, v any, opts ...Option) error {
	o := newOptions(opts)
	switch f {
	case JSON:
		return writeJSON(w, v, o)
	case YAML:
		return writeYAML(w, v, o)
	default:
		return fmt.Errorf("%w: %q for a single value", ErrUnsupportedFormat, f)
	}
}

// WriteRows renders rows in any output format. Empty input writes nothing.
func WriteRows[R ~[]string](w io.Writer, f Format, rows []R, opts ...Option) error {
	if len(rows) == 0 {
		return nil
	}
	o := newOptions(opts)
	switch f {
	case JSON:
		return writeJSON(w, rows, o)
	case YAML:
		return writeYAML(w, rows, o)
	case CSV:
		return writeCSV(w, rows)
	case Table:
		return writeTable(w, rows, o.border)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func writeJSON(w io.Writer, v any, o options) error {
	enc := json.NewEncoder(w)
	if o.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", o.indent))
	}
	return enc.Encode(stringKeys(v))
}

// stringKeys converts map[any]any values, as decoded from YAML mappings with
// non-string keys, into map[string]any so they encode as JSON objects.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = stringKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stringKeys(val)
		}
		return out
	default:
		return v
	}
}

func writeYAML(w io.Writer, v any, o options) error {
	enc := yaml.NewEncoder(w)
	if o.indent > 0 {
		enc.SetIndent(o.indent)
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeCSV[R ~[]string](w io.Writer, rows []R) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
