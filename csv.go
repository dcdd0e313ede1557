package filekit

import (
	"encoding/csv"
	"errors"
	"io"
	"unicode/utf8"
)

// Row is one CSV record: its fields in source column order.
type Row []string

// Table is a sequence of rows in source order.
type Table []Row

// ParseTable reads comma-separated records from r. When hasHeaders is true
// the first record is read and discarded; it must still be well formed.
// Fields must be valid UTF-8.
// Rows may have different lengths. Empty input yields an empty table.
func ParseTable(r io.Reader, hasHeaders bool) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	table := Table{}
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		if err != nil {
			return nil, csvError(err)
		}
		for i, field := range rec {
			if !utf8.ValidString(field) {
				line, _ := cr.FieldPos(i)
				return nil, &ParseError{Format: CSV, Line: line, Err: errInvalidUTF8}
			}
		}
		if first && hasHeaders {
			first = false
			continue
		}
		first = false
		table = append(table, Row(rec))
	}
}

// csvError converts syntax errors to [*ParseError]; read errors from the
// underlying reader pass through unchanged.
func csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Format: CSV, Line: perr.Line, Err: perr.Err}
	}
	return err
}
