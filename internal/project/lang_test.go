package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendLang(t *testing.T) {
	p := New(t.TempDir(), validMeta())
	entries := []LangEntry{
		{Key: "entity.myns:wolf.name", Value: "Wolf"},
		{Key: "item.spawn_egg.entity.myns:wolf.name", Value: "Wolf"},
	}

	added, err := p.AppendLang(entries)
	require.NoError(t, err)
	assert.Equal(t, entries, added)

	added, err = p.AppendLang(entries)
	require.NoError(t, err)
	assert.Empty(t, added)

	data, err := os.ReadFile(p.LangFile())
	require.NoError(t, err)
	assert.Equal(t, "entity.myns:wolf.name=Wolf\nitem.spawn_egg.entity.myns:wolf.name=Wolf\n", string(data))
}

func TestAppendLangKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts", "en_US.lang")
	put(t, path, "## header\npack.name=My Mod")

	added, err := AppendLangFile(path, []LangEntry{
		{Key: "pack.name", Value: "Other"},
		{Key: "entity.myns:bat.name", Value: "Bat"},
		{Key: "entity.myns:bat.name", Value: "Duplicate"},
	})
	require.NoError(t, err)
	assert.Equal(t, []LangEntry{{Key: "entity.myns:bat.name", Value: "Bat"}}, added)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## header\npack.name=My Mod\nentity.myns:bat.name=Bat\n", string(data))
}
