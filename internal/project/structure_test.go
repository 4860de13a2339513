package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/minecorg/internal/jsontree"
)

const structureJSON = `{
  "behavior_packs": {
    "{mod_name}": {
      "entities": {},
      "manifest.json": "file"
    }
  },
  "resource_packs": {
    "{mod_name}": {
      "entity": {},
      "texts": {"en_US.lang": "file"}
    }
  },
  "notes": 42,
  "README.md": "file"
}`

func structureTree(t *testing.T) jsontree.Value {
	t.Helper()
	v, err := jsontree.Parse([]byte(structureJSON))
	require.NoError(t, err)
	return v
}

var vars = map[string]string{"project_name": "p", "mod_name": "my_mod", "namespace": "myns"}

func TestExpandName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "entities", want: "entities"},
		{in: "{mod_name}", want: "my_mod"},
		{in: "{namespace}_{mod_name}.json", want: "myns_my_mod.json"},
		{in: "{author}", wantErr: ErrUnknownPlaceholder},
		{in: "{", want: "{"},
		{in: "..", wantErr: ErrInvalidName},
		{in: "a/b", wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandName(tt.in, vars)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ExpandName("{mod_name}", map[string]string{"mod_name": ""})
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestCreateStructure(t *testing.T) {
	root := t.TempDir()
	tree := structureTree(t)

	created, err := CreateStructure(root, tree, vars)
	require.NoError(t, err)

	assert.Equal(t, []Item{
		{Path: "behavior_packs", Dir: true},
		{Path: filepath.Join("behavior_packs", "my_mod"), Dir: true},
		{Path: filepath.Join("behavior_packs", "my_mod", "entities"), Dir: true},
		{Path: filepath.Join("behavior_packs", "my_mod", "manifest.json")},
		{Path: "resource_packs", Dir: true},
		{Path: filepath.Join("resource_packs", "my_mod"), Dir: true},
		{Path: filepath.Join("resource_packs", "my_mod", "entity"), Dir: true},
		{Path: filepath.Join("resource_packs", "my_mod", "texts"), Dir: true},
		{Path: filepath.Join("resource_packs", "my_mod", "texts", "en_US.lang")},
		{Path: "README.md"},
	}, created)
	assert.NoFileExists(t, filepath.Join(root, "notes"))
	assert.NoDirExists(t, filepath.Join(root, "notes"))

	missing, err := ScanStructure(root, tree, vars)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestCreateStructureIsIdempotent(t *testing.T) {
	root := t.TempDir()
	tree := structureTree(t)

	_, err := CreateStructure(root, tree, vars)
	require.NoError(t, err)
	manifest := filepath.Join(root, "behavior_packs", "my_mod", "manifest.json")
	require.NoError(t, os.WriteFile(manifest, []byte(`{"keep": true}`), 0o600))

	created, err := CreateStructure(root, tree, vars)
	require.NoError(t, err)
	assert.Empty(t, created)

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Equal(t, `{"keep": true}`, string(data))
}

func TestCreateStructureUnknownPlaceholder(t *testing.T) {
	tree, err := jsontree.Parse([]byte(`{"{author}": {}}`))
	require.NoError(t, err)

	_, err = CreateStructure(t.TempDir(), tree, vars)
	assert.ErrorIs(t, err, ErrUnknownPlaceholder)
}

func TestScanStructure(t *testing.T) {
	root := t.TempDir()
	tree := structureTree(t)

	// Missing directories are reported without their children.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "resource_packs", "my_mod", "texts"), 0o750))
	// A directory where a file belongs counts as missing.
	require.NoError(t, os.Mkdir(filepath.Join(root, "README.md"), 0o750))

	missing, err := ScanStructure(root, tree, vars)
	require.NoError(t, err)
	assert.Equal(t, []Item{
		{Path: "behavior_packs", Dir: true},
		{Path: filepath.Join("resource_packs", "my_mod", "entity"), Dir: true},
		{Path: filepath.Join("resource_packs", "my_mod", "texts", "en_US.lang")},
		{Path: "README.md"},
	}, missing)
}

func TestScanStructureNonObject(t *testing.T) {
	missing, err := ScanStructure(t.TempDir(), jsontree.EmptyObject(), vars)
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = ScanStructure(t.TempDir(), jsontree.NewArray(), vars)
	require.NoError(t, err)
	assert.Empty(t, missing)
}
