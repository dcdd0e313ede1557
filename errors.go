package filekit

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrIO                = errors.New("io failure")
	ErrDecode            = errors.New("decode failure")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidPattern    = errors.New("invalid pattern")
)

// Kind classifies a [LoadError].
type Kind int

const (
	// IOFailure means the file could not be opened or read.
	IOFailure Kind = iota + 1
	// DecodeFailure means the content is malformed for the requested format.
	DecodeFailure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case IOFailure:
		return "io failure"
	case DecodeFailure:
		return "decode failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// LoadError is returned by the file loaders. It matches [ErrIO] or
// [ErrDecode] under errors.Is depending on Kind, and unwraps to the cause.
type LoadError struct {
	Kind   Kind
	Path   string
	Format Format // empty for IOFailure
	Err    error
}

func (e *LoadError) Error() string {
	if e.Kind == DecodeFailure {
		return fmt.Sprintf("decode %s %s: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	switch e.Kind {
	case IOFailure:
		return []error{ErrIO, e.Err}
	case DecodeFailure:
		return []error{ErrDecode, e.Err}
	default:
		return []error{e.Err}
	}
}

// ParseError is returned by the parsers when input is malformed for the
// format or does not fit the target type.
type ParseError struct {
	Format Format
	Line   int // 1-based; 0 when the parser does not report one
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CompileError is returned by [Matches] for a pattern that does not compile.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v: %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() []error { return []error{ErrInvalidPattern, e.Err} }

func decodeError(path string, f Format, err error) *LoadError {
	var pe *ParseError
	if errors.As(err, &pe) {
		err = pe.Err
		if pe.Line > 0 {
			err = fmt.Errorf("line %d: %w", pe.Line, pe.Err)
		}
	}
	return &LoadError{Kind: DecodeFailure, Path: path, Format: f, Err: err}
}
