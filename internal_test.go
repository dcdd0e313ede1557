package filekit

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	Name     string  `json:"name"`
	Children []*node `json:"children"`
}

func TestNeedsCheck(t *testing.T) {
	t.Parallel()
	assert.True(t, needsCheck(reflect.TypeFor[node]()))
	assert.True(t, needsCheck(reflect.TypeFor[[]map[string]*node]()))
	assert.False(t, needsCheck(reflect.TypeFor[any]()))
	assert.False(t, needsCheck(reflect.TypeFor[map[string][]int]()))
}

func TestCheckRequiredRecursiveType(t *testing.T) {
	t.Parallel()
	doc := map[string]any{
		"name": "root",
		"children": []any{
			map[string]any{"name": "a", "children": []any{}},
			map[string]any{"children": []any{}},
		},
	}
	err := checkRequired(reflect.TypeFor[node](), doc, jsonRules)
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "children[1].name")
}

func TestCheckRequiredSkipsCustomDecoders(t *testing.T) {
	t.Parallel()
	type event struct {
		At time.Time `yaml:"at"`
	}
	doc := map[string]any{"at": "2024-01-02T03:04:05Z"}
	assert.NoError(t, checkRequired(reflect.TypeFor[event](), doc, yamlRules))
}

func TestCheckRequiredNonStringKeys(t *testing.T) {
	t.Parallel()
	type pair struct {
		One string `yaml:"1"`
	}
	doc := map[any]any{1: "x"}
	assert.NoError(t, checkRequired(reflect.TypeFor[pair](), doc, yamlRules))
}

func TestCheckRequiredIgnoresSkippedFields(t *testing.T) {
	t.Parallel()
	type skipped struct {
		Name   string `json:"name"`
		Secret string `json:"-"`
		hidden string
	}
	assert.NoError(t, checkRequired(reflect.TypeFor[skipped](), map[string]any{"name": "n"}, jsonRules))
}

func TestCheckRequiredDashKey(t *testing.T) {
	t.Parallel()
	type dashed struct {
		Dash string `json:"-,"`
	}
	err := checkRequired(reflect.TypeFor[dashed](), map[string]any{}, jsonRules)
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "field: -")

	assert.NoError(t, checkRequired(reflect.TypeFor[dashed](), map[string]any{"-": "x"}, jsonRules))
}

func TestCheckRequiredMismatchedShape(t *testing.T) {
	t.Parallel()
	// Shape mismatches are reported by the decoder, not the field check.
	assert.NoError(t, checkRequired(reflect.TypeFor[node](), []any{1}, jsonRules))
}

func TestHasOpt(t *testing.T) {
	t.Parallel()
	assert.True(t, hasOpt("omitempty", "omitempty"))
	assert.True(t, hasOpt("string,omitempty", "omitempty"))
	assert.False(t, hasOpt("", "omitempty"))
	assert.False(t, hasOpt("omitemptyx", "omitempty"))
}

func TestParseTag(t *testing.T) {
	t.Parallel()
	name, opts := parseTag("name,omitempty")
	assert.Equal(t, "name", name)
	assert.Equal(t, "omitempty", opts)

	name, opts = parseTag(",inline")
	assert.Empty(t, name)
	assert.Equal(t, "inline", opts)
}

func TestLineAt(t *testing.T) {
	t.Parallel()
	data := []byte("a\nb\nc")
	assert.Equal(t, 1, lineAt(data, 0))
	assert.Equal(t, 2, lineAt(data, 3))
	assert.Equal(t, 3, lineAt(data, 100))
	assert.Equal(t, 0, lineAt(data, -1))
}
