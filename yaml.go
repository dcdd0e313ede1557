package filekit

import (
	"reflect"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes the first YAML document in data into a new T.
// An empty document decodes to the zero value of T.
func ParseYAML[T any](data []byte) (T, error) {
	var zero, v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return zero, &ParseError{Format: YAML, Err: err}
	}
	if t := reflect.TypeFor[T](); needsCheck(t) {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return zero, &ParseError{Format: YAML, Err: err}
		}
		if err := checkRequired(t, doc, yamlRules); err != nil {
			return zero, &ParseError{Format: YAML, Err: err}
		}
	}
	return v, nil
}
