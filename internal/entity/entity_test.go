package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/minecorg/internal/project"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "wolf"},
		{name: "dire_wolf2"},
		{name: "Wolf", wantErr: true},
		{name: "2wolf", wantErr: true},
		{name: "dire-wolf", wantErr: true},
		{name: "", wantErr: true},
		{name: "../wolf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.name, "myns")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "myns:"+tt.name, e.ID)
		})
	}

	_, err := New("wolf", "")
	assert.Error(t, err)
}

func TestEntityNames(t *testing.T) {
	e, err := New("dire_wolf", "myns")
	require.NoError(t, err)

	assert.Equal(t, "Dire Wolf", e.DisplayName())
	assert.Equal(t, "geometry.dire_wolf", e.GeometryID())
	assert.Equal(t, "controller.render.dire_wolf", e.RenderControllerID())
	assert.Equal(t, []project.LangEntry{
		{Key: "entity.myns:dire_wolf.name", Value: "Dire Wolf"},
		{Key: "item.spawn_egg.entity.myns:dire_wolf.name", Value: "Spawn Dire Wolf"},
	}, e.LangEntries())
}
