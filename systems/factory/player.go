package factory

import (
	"fmt"

	"github.com/automoto/fps01/archetypes"
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player entity and its body. The body is dynamic in
// physics movement mode and kinematic otherwise; rotation is always locked.
func CreatePlayer(w donburi.World, space physics.Adapter, spawn mgl64.Vec3) (*donburi.Entry, error) {
	data := components.NewPlayerData(cfg.Player)
	data.Spawn = spawn

	kind := physics.Dynamic
	if data.Mode == cfg.MovementKinematic {
		kind = physics.Kinematic
	}

	rotation := gamemath.LookRotation(data.Look)
	body, col, err := space.CreateBody(physics.BodyDesc{
		Kind:         kind,
		Shape:        physics.CapsuleY(cfg.Player.HalfHeight, cfg.Player.Radius),
		Pose:         physics.Pose{Position: spawn, Rotation: rotation},
		Density:      cfg.Player.Density,
		Friction:     cfg.Physics.Friction,
		LockRotation: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create player body: %w", err)
	}

	player := archetypes.Player.Spawn(w)
	components.Player.SetValue(player, data)
	components.RigidBody.SetValue(player, components.RigidBodyData{Handle: body, Kind: kind})
	components.Collider.SetValue(player, components.ColliderData{Handle: col})
	components.Transform.SetValue(player, components.TransformData{
		Position: spawn.Add(mgl64.Vec3{0, cfg.Camera.EyeOffset, 0}),
		Rotation: rotation,
	})

	return player, nil
}
