package jsontree

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clientEntity = `{
  "format_version": "1.10.0",
  "minecraft:client_entity": {
    "description": {
      "identifier": "myns:wolf",
      "materials": {
        "default": "entity_alphatest"
      },
      "render_controllers": [
        "controller.render.wolf"
      ],
      "scale": 1.50,
      "spawnable": true,
      "parent": null,
      "tags": [],
      "extra": {}
    }
  }
}
`

func TestParseMarshalRoundTrip(t *testing.T) {
	v, err := Parse([]byte(clientEntity))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, v))
	assert.Equal(t, clientEntity, buf.String())
}

func TestParsePreservesKeyOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z": 1, "a": 2, "m": {"y": true, "b": false}}`))
	require.NoError(t, err)

	obj, ok := v.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())

	inner, _ := obj.Get("m")
	innerObj, ok := inner.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, innerObj.Keys())
}

func TestParseDuplicateKeys(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	obj, _ := v.AsObject()
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	got, _ := obj.Get("a")
	n, ok := got.AsNumber()
	require.True(t, ok)
	assert.Equal(t, json.Number("3"), n)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: "   \n"},
		{name: "truncated object", input: `{"a": 1`},
		{name: "missing value", input: `{"a": }`},
		{name: "trailing value", input: `{} {}`},
		{name: "trailing garbage", input: `[1, 2]]`},
		{name: "bare word", input: `wolf`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{input: `null`, kind: KindNull},
		{input: `true`, kind: KindBool},
		{input: `-1.5e3`, kind: KindNumber},
		{input: `"geometry.unknown"`, kind: KindString},
		{input: `[]`, kind: KindArray},
		{input: `{}`, kind: KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.input, string(Marshal(v)))
		})
	}
}

func TestMarshalCompact(t *testing.T) {
	v, err := Parse([]byte(`{ "a" : [1, "x", {"b": null}], "c": {} }`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,"x",{"b":null}],"c":{}}`, string(Marshal(v)))
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	v := String("a<b>&c")
	assert.Equal(t, `"a<b>&c"`, string(Marshal(v)))
}

func TestValueJSONInterop(t *testing.T) {
	type wrapper struct {
		Tree Value `json:"tree"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"tree": {"k2": 1, "k1": [true]}}`), &w))

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tree": {"k2": 1, "k1": [true]}}`, string(data))
	assert.Contains(t, string(data), `{"k2":1,"k1":[true]}`)
}

func TestWriteFileAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wolf.json")

	v, err := Parse([]byte(clientEntity))
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, v))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, clientEntity, string(data))

	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, Equal(v, back))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
