package assets

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedArenas(t *testing.T) {
	names, err := ArenaNames()
	require.NoError(t, err)
	assert.Contains(t, names, "proving")

	arena, err := LoadArena("proving")
	require.NoError(t, err)
	assert.Equal(t, "proving", arena.Name)
	assert.Len(t, arena.Props, 6)
	assert.Len(t, arena.Platforms, 1)
	assert.True(t, arena.HasSpawn)
	assert.Equal(t, mgl64.Vec3{0, 2.5, 10}, arena.Spawn)
	assert.Equal(t, mgl64.Vec3{5, 10, 5}, arena.Props[1].Position)
}

func TestLoadArenaDefault(t *testing.T) {
	arena, err := LoadArena("")
	require.NoError(t, err)
	assert.Equal(t, "default", arena.Name)

	_, err = LoadArena("missing")
	assert.Error(t, err)
}
