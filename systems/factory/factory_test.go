package factory

import (
	"testing"

	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/leveldata"
	"github.com/automoto/fps01/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func count(w donburi.World, tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestCreateArena(t *testing.T) {
	w := donburi.NewWorld()
	space := CreateSpace()
	arena := leveldata.Default()

	player, err := CreateArena(w, space, arena)
	require.NoError(t, err)

	assert.Equal(t, 1, count(w, tags.Player))
	assert.Equal(t, 1, count(w, tags.Floor))
	assert.Equal(t, 2, count(w, tags.Prop))
	assert.Equal(t, 1, count(w, tags.Platform))
	assert.Equal(t, 1, count(w, tags.Light))
	assert.Equal(t, 1, count(w, components.Input))
	assert.Equal(t, 1, count(w, components.Diagnostics))
	assert.Equal(t, len(arena.Props)+len(arena.Platforms)+1, space.BodyCount())

	data := components.Player.Get(player)
	assert.Equal(t, cfg.Player.Spawn, data.Spawn)
	assert.True(t, data.EnableMouseLook)
	assert.True(t, data.EnableKeyboardMove)
}

func TestCreateArenaUsesArenaSpawn(t *testing.T) {
	w := donburi.NewWorld()
	space := CreateSpace()
	arena := leveldata.Default()
	arena.Spawn = mgl64.Vec3{3, 4, 5}
	arena.HasSpawn = true

	player, err := CreateArena(w, space, arena)
	require.NoError(t, err)

	st, err := space.Body(components.RigidBody.Get(player).Handle)
	require.NoError(t, err)
	assert.Equal(t, arena.Spawn, st.Pose.Position)
	assert.Equal(t, arena.Spawn.Add(mgl64.Vec3{0, cfg.Camera.EyeOffset, 0}), components.Transform.Get(player).Position)
}

func TestCreatePlayerBodyKind(t *testing.T) {
	tests := []struct {
		name string
		mode cfg.MovementMode
		kind physics.BodyKind
	}{
		{"physics movement", cfg.MovementPhysics, physics.Dynamic},
		{"kinematic movement", cfg.MovementKinematic, physics.Kinematic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := cfg.Player.MovementMode
			cfg.Player.MovementMode = tt.mode
			t.Cleanup(func() { cfg.Player.MovementMode = old })

			w := donburi.NewWorld()
			space := CreateSpace()
			player, err := CreatePlayer(w, space, mgl64.Vec3{0, 2, 0})
			require.NoError(t, err)

			rb := components.RigidBody.Get(player)
			assert.Equal(t, tt.kind, rb.Kind)
			st, err := space.Body(rb.Handle)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, st.Kind)

			info, err := space.Collider(components.Collider.Get(player).Handle)
			require.NoError(t, err)
			assert.Equal(t, physics.ShapeCapsuleY, info.Shape.Kind)
		})
	}
}

func TestCreateProjectile(t *testing.T) {
	tests := []struct {
		name  string
		shape physics.ShapeKind
	}{
		{"cube", physics.ShapeCuboid},
		{"ball", physics.ShapeBall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := donburi.NewWorld()
			space := CreateSpace()
			p, err := CreateProjectile(w, space, ProjectileSpec{
				Shape:          tt.shape,
				Position:       mgl64.Vec3{0, 3, 0},
				Rotation:       mgl64.QuatIdent(),
				LinearVelocity: mgl64.Vec3{0, 0, -15},
				Density:        2,
				Tick:           9,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.shape, components.Visual.Get(p).Shape.Kind)
			assert.Equal(t, uint64(9), components.Projectile.Get(p).SpawnTick)

			st, err := space.Body(components.RigidBody.Get(p).Handle)
			require.NoError(t, err)
			assert.Equal(t, physics.Dynamic, st.Kind)
			assert.Equal(t, mgl64.Vec3{0, 0, -15}, st.LinearVelocity)
			assert.InDelta(t, 2*components.Visual.Get(p).Shape.Volume(), st.Mass, 1e-9)

			DestroyBody(w, space, p)
			assert.False(t, p.Valid())
			assert.Zero(t, space.BodyCount())

			// already gone
			DestroyBody(w, space, p)
		})
	}
}

func TestCreateProjectileWorldFull(t *testing.T) {
	w := donburi.NewWorld()
	pc := cfg.DefaultPhysics()
	pc.MaxBodies = 1
	space := physics.NewWorld(pc)

	_, err := CreateProjectile(w, space, ProjectileSpec{Shape: physics.ShapeBall, Rotation: mgl64.QuatIdent(), Density: 1})
	require.NoError(t, err)
	_, err = CreateProjectile(w, space, ProjectileSpec{Shape: physics.ShapeBall, Rotation: mgl64.QuatIdent(), Density: 1})
	assert.ErrorIs(t, err, physics.ErrWorldFull)
	assert.Equal(t, 1, count(w, tags.Projectile))
}

func TestColorByName(t *testing.T) {
	assert.Equal(t, cfg.Blue, colorByName("blue", cfg.Gray))
	assert.Equal(t, cfg.Gray, colorByName("", cfg.Gray))
	assert.Equal(t, cfg.Gray, colorByName("chartreuse", cfg.Gray))
}
