package filekit

import "fmt"

// Format identifies an input format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
)

var formats = []Format{JSON, YAML, CSV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Parse decodes data in format f into a new T. Only [JSON] and [YAML] are
// accepted; tables go through [ParseTable].
func Parse[T any](data []byte, f Format) (T, error) {
	switch f {
	case JSON:
		return ParseJSON[T](data)
	case YAML:
		return ParseYAML[T](data)
	default:
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
