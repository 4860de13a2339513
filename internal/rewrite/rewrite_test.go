package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/minecorg/internal/jsontree"
)

func parse(t *testing.T, s string) jsontree.Value {
	t.Helper()
	v, err := jsontree.Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func compact(v jsontree.Value) string {
	return string(jsontree.Marshal(v))
}

const behaviorEntity = `{
  "format_version": "1.21.0",
  "minecraft:entity": {
    "description": {
      "identifier": "namespace:entity",
      "is_spawnable": true
    },
    "components": {
      "minecraft:type_family": {"family": ["entity", "mob"]},
      "minecraft:health": {"value": 20, "max": 20},
      "minecraft:variant": {"value": "entity"}
    }
  }
}`

func TestSubstituteValues(t *testing.T) {
	tree := parse(t, behaviorEntity)

	got, err := SubstituteValues(tree,
		[]string{"namespace:entity", "entity"},
		[]string{"myns:wolf", "wolf"})
	require.NoError(t, err)

	want := parse(t, `{
  "format_version": "1.21.0",
  "minecraft:entity": {
    "description": {
      "identifier": "myns:wolf",
      "is_spawnable": true
    },
    "components": {
      "minecraft:type_family": {"family": ["wolf", "mob"]},
      "minecraft:health": {"value": 20, "max": 20},
      "minecraft:variant": {"value": "wolf"}
    }
  }
}`)
	assert.Equal(t, compact(want), compact(got))
}

func TestSubstituteValuesEmptySpecIsIdentity(t *testing.T) {
	tree := parse(t, behaviorEntity)

	got, err := SubstituteValues(tree, nil, nil)
	require.NoError(t, err)
	assert.True(t, jsontree.Equal(tree, got))

	got, err = SubstituteValues(tree, []string{}, []string{})
	require.NoError(t, err)
	assert.True(t, jsontree.Equal(tree, got))
}

func TestSubstituteValuesLengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		old  []string
		new  []string
	}{
		{name: "more old", old: []string{"a", "b"}, new: []string{"x"}},
		{name: "more new", old: []string{"a"}, new: []string{"x", "y"}},
		{name: "nil old", old: nil, new: []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SubstituteValues(parse(t, `{"a": "a"}`), tt.old, tt.new)
			assert.ErrorIs(t, err, ErrLengthMismatch)
		})
	}
}

func TestSubstituteValuesOnlyFullStringLeaves(t *testing.T) {
	tree := parse(t, `{"a": "entity_alphatest", "b": 20, "c": true, "d": null, "entity": "entity", "e": ["20"]}`)

	got, err := SubstituteValues(tree,
		[]string{"entity", "20", "true", "null"},
		[]string{"wolf", "twenty", "yes", "none"})
	require.NoError(t, err)

	// Keys are not values; numbers, bools and null are never candidates.
	assert.Equal(t,
		`{"a":"entity_alphatest","b":20,"c":true,"d":null,"entity":"wolf","e":["twenty"]}`,
		compact(got))
}

func TestSubstituteValuesLastDuplicateWins(t *testing.T) {
	got, err := SubstituteValues(parse(t, `["a"]`), []string{"a", "a"}, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, `["y"]`, compact(got))
}

func TestSubstituteValuesDoesNotChain(t *testing.T) {
	got, err := SubstituteValues(parse(t, `["a", "b"]`), []string{"a", "b"}, []string{"b", "c"})
	require.NoError(t, err)
	assert.Equal(t, `["b","c"]`, compact(got))
}

func TestSubstituteValuesDoesNotMutateInput(t *testing.T) {
	tree := parse(t, behaviorEntity)
	before := compact(tree)

	_, err := SubstituteValues(tree, []string{"namespace:entity"}, []string{"myns:wolf"})
	require.NoError(t, err)
	assert.Equal(t, before, compact(tree))
}

func TestSubstituteValuesIdempotent(t *testing.T) {
	tree := parse(t, behaviorEntity)
	old := []string{"namespace:entity", "entity"}
	repl := []string{"myns:wolf", "wolf"}

	once, err := SubstituteValues(tree, old, repl)
	require.NoError(t, err)
	twice, err := SubstituteValues(once, old, repl)
	require.NoError(t, err)
	assert.True(t, jsontree.Equal(once, twice))
}

func TestSubstituteValuesScalarRoot(t *testing.T) {
	got, err := SubstituteValues(jsontree.String("a"), []string{"a"}, []string{"b"})
	require.NoError(t, err)
	assert.Equal(t, `"b"`, compact(got))
}

func TestRenameKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "every depth",
			input: `{"a": {"k_old": 1, "b": {"k_old": 2}}}`,
			want:  `{"a":{"k_new":1,"b":{"k_new":2}}}`,
		},
		{
			name:  "inside arrays",
			input: `[{"k_old": [{"k_old": "x"}]}]`,
			want:  `[{"k_new":[{"k_new":"x"}]}]`,
		},
		{
			name:  "overwrites existing key",
			input: `{"k_new": "before", "k_old": "after"}`,
			want:  `{"k_new":"after"}`,
		},
		{
			name:  "keeps position",
			input: `{"first": 1, "k_old": 2, "last": 3}`,
			want:  `{"first":1,"k_new":2,"last":3}`,
		},
		{
			name:  "values are not renamed",
			input: `{"a": "k_old"}`,
			want:  `{"a":"k_old"}`,
		},
		{
			name:  "no match",
			input: `{"a": [1, 2]}`,
			want:  `{"a":[1,2]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenameKey(parse(t, tt.input), "k_old", "k_new")
			assert.Equal(t, tt.want, compact(got))
		})
	}
}

func TestRenameKeyRenderController(t *testing.T) {
	tree := parse(t, `{
  "format_version": "1.8.0",
  "render_controllers": {
    "controller.render.entity": {
      "geometry": "Geometry.default",
      "textures": ["Texture.default"]
    }
  }
}`)
	before := compact(tree)

	got := RenameKey(tree, "controller.render.entity", "controller.render.wolf")
	assert.Equal(t,
		`{"format_version":"1.8.0","render_controllers":{"controller.render.wolf":{"geometry":"Geometry.default","textures":["Texture.default"]}}}`,
		compact(got))
	assert.Equal(t, before, compact(tree))
}
