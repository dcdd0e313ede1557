package filekit

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// Load reads the file at path and decodes it as format f into a new T.
// Only [JSON] and [YAML] are accepted. Read failures return a [*LoadError]
// of kind [IOFailure]; malformed content returns kind [DecodeFailure].
func Load[T any](path string, f Format) (T, error) {
	var zero T
	if f != JSON && f != YAML {
		return zero, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, &LoadError{Kind: IOFailure, Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return zero, &LoadError{Kind: DecodeFailure, Path: path, Format: f, Err: errInvalidUTF8}
	}
	v, err := Parse[T](data, f)
	if err != nil {
		return zero, decodeError(path, f, err)
	}
	return v, nil
}

// LoadJSON reads the file at path and decodes it as JSON into a new T.
func LoadJSON[T any](path string) (T, error) {
	return Load[T](path, JSON)
}

// LoadYAML reads the file at path and decodes it as YAML into a new T.
func LoadYAML[T any](path string) (T, error) {
	return Load[T](path, YAML)
}

// LoadTable reads the CSV file at path. See [ParseTable] for the header and
// row rules.
func LoadTable(path string, hasHeaders bool) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: IOFailure, Path: path, Err: err}
	}
	defer f.Close()

	table, err := ParseTable(f, hasHeaders)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, decodeError(path, CSV, err)
		}
		return nil, &LoadError{Kind: IOFailure, Path: path, Err: err}
	}
	return table, nil
}
