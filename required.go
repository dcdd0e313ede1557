package filekit

import (
	"encoding"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fieldRules describes how one format maps struct fields to document keys.
type fieldRules struct {
	tag         string
	defaultName func(field string) string
	fold        bool // case-insensitive key fallback
	inlineTag   bool // embedded structs flatten only with ",inline"
	unmarshaler reflect.Type
}

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

	jsonRules = fieldRules{
		tag:         "json",
		defaultName: func(s string) string { return s },
		fold:        true,
		unmarshaler: reflect.TypeFor[json.Unmarshaler](),
	}
	yamlRules = fieldRules{
		tag:         "yaml",
		defaultName: strings.ToLower,
		inlineTag:   true,
		unmarshaler: reflect.TypeFor[yaml.Unmarshaler](),
	}
)

// checkRequired reports the first required struct field of t that has no
// value in doc. doc is the generic decoding of the same input.
func checkRequired(t reflect.Type, doc any, r fieldRules) error {
	if t.Kind() == reflect.Struct && doc == nil {
		doc = map[string]any{}
	}
	return r.walk(t, doc, "")
}

// needsCheck reports whether values of t contain struct fields anywhere.
func needsCheck(t reflect.Type) bool {
	return hasStruct(t, map[reflect.Type]bool{})
}

func hasStruct(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
		return hasStruct(t.Elem(), seen)
	default:
		return false
	}
}

func (r fieldRules) walk(t reflect.Type, v any, path string) error {
	t = indirect(t)
	if v == nil || r.custom(t) {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		m, ok := asMap(v)
		if !ok {
			return nil
		}
		return r.walkStruct(t, m, path)
	case reflect.Slice, reflect.Array:
		s, ok := v.([]any)
		if !ok {
			return nil
		}
		for i, elem := range s {
			if err := r.walk(t.Elem(), elem, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
	case reflect.Map:
		m, ok := asMap(v)
		if !ok {
			return nil
		}
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if err := r.walk(t.Elem(), m[k], joinPath(path, k)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r fieldRules) walkStruct(t reflect.Type, m map[string]any, path string) error {
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get(r.tag)
		if tag == "-" {
			continue
		}
		name, opts := parseTag(tag)
		if r.flatten(f, name, opts) {
			if err := r.walkStruct(indirect(f.Type), m, path); err != nil {
				return err
			}
			continue
		}
		// Inline maps collect leftover keys and have no key of their own.
		if r.inlineTag && hasOpt(opts, "inline") {
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = r.defaultName(f.Name)
		}
		key := joinPath(path, name)
		val, ok := r.lookup(m, name)
		if !ok || val == nil {
			if required(f, opts) {
				return fmt.Errorf("%w: %s", ErrMissingField, key)
			}
			continue
		}
		if err := r.walk(f.Type, val, key); err != nil {
			return err
		}
	}
	return nil
}

// flatten reports whether field f contributes its fields to the parent.
func (r fieldRules) flatten(f reflect.StructField, name, opts string) bool {
	if indirect(f.Type).Kind() != reflect.Struct {
		return false
	}
	if r.inlineTag {
		return hasOpt(opts, "inline")
	}
	return f.Anonymous && name == ""
}

func (r fieldRules) custom(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return pt.Implements(r.unmarshaler) || pt.Implements(textUnmarshalerType)
}

func (r fieldRules) lookup(m map[string]any, name string) (any, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	if !r.fold {
		return nil, false
	}
	for k, v := range m {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func required(f reflect.StructField, opts string) bool {
	switch f.Type.Kind() {
	case reflect.Pointer, reflect.Interface:
		return false
	}
	return !hasOpt(opts, "omitempty") && !hasOpt(opts, "omitzero")
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func parseTag(tag string) (name, opts string) {
	name, opts, _ = strings.Cut(tag, ",")
	return name, opts
}

func hasOpt(opts, opt string) bool {
	for o := range strings.SplitSeq(opts, ",") {
		if o == opt {
			return true
		}
	}
	return false
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
