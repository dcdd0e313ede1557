package filekit

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
)

// ParseJSON decodes a single JSON value from data into a new T.
// Trailing data after the value is a syntax error.
func ParseJSON[T any](data []byte) (T, error) {
	var zero, v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, jsonError(data, err)
	}
	if t := reflect.TypeFor[T](); needsCheck(t) {
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return zero, jsonError(data, err)
		}
		if err := checkRequired(t, doc, jsonRules); err != nil {
			return zero, &ParseError{Format: JSON, Err: err}
		}
	}
	return v, nil
}

func jsonError(data []byte, err error) *ParseError {
	pe := &ParseError{Format: JSON, Err: err}
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syn):
		pe.Line = lineAt(data, syn.Offset)
	case errors.As(err, &typ):
		pe.Line = lineAt(data, typ.Offset)
	}
	return pe
}

// lineAt returns the 1-based line containing byte offset off.
func lineAt(data []byte, off int64) int {
	if off < 0 {
		return 0
	}
	if off > int64(len(data)) {
		off = int64(len(data))
	}
	return 1 + bytes.Count(data[:off], []byte{'\n'})
}
