// Package filekit loads structured data from files into typed values.
//
// Supported formats are JSON, YAML, and CSV. JSON and YAML documents decode
// into any caller-chosen type through the generic entry points [Load],
// [LoadJSON], and [LoadYAML]. CSV files load into a [Table] of string rows
// through [LoadTable]. The parse-only variants [Parse], [ParseJSON],
// [ParseYAML], and [ParseTable] work on in-memory input.
//
// # Structured documents
//
// Decoding happens into a fresh zero value of the target type. A decode
// either fully succeeds or returns the zero value and an error:
//
//	type Person struct {
//		Name string `json:"name"`
//		Age  int    `json:"age"`
//	}
//	p, err := filekit.LoadJSON[Person]("people.json")
//
// Exported struct fields are required. A field is optional when it is a
// pointer or an interface, or when its tag carries omitempty. Missing
// required fields fail with [ErrMissingField].
//
// # Tables
//
// [LoadTable] reads comma-separated records with standard double-quote
// escaping. When hasHeaders is true the first record is validated and then
// dropped. Fields are never converted and rows may differ in length:
//
//	rows, err := filekit.LoadTable("report.csv", true)
//
// # Patterns
//
// [Matches] reports whether a regular expression matches anywhere in a
// string. An invalid pattern is a [*CompileError], never a false result.
//
// # Errors
//
// File loaders return a [*LoadError] whose [Kind] separates I/O failures
// from decode failures. Parsers return a [*ParseError]. The package exports
// sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — format not handled by the called function
//   - [ErrIO] — the file could not be read
//   - [ErrDecode] — the content is malformed for the requested format
//   - [ErrMissingField] — a required struct field is absent
//   - [ErrInvalidPattern] — the pattern failed to compile
package filekit
