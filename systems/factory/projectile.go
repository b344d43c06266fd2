package factory

import (
	"fmt"

	"github.com/automoto/fps01/archetypes"
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ProjectileSpec is a fully resolved launch: where, how fast, how heavy.
type ProjectileSpec struct {
	Shape           physics.ShapeKind
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3
	Density         float64
	Tick            uint64
}

// CreateProjectile spawns a thrown cube or ball. It becomes part of the
// simulation on the next physics advance.
func CreateProjectile(w donburi.World, space physics.Adapter, spec ProjectileSpec) (*donburi.Entry, error) {
	shape := physics.Cuboid(cfg.Projectile.CubeHalfExtent, cfg.Projectile.CubeHalfExtent, cfg.Projectile.CubeHalfExtent)
	clr := cfg.Orange
	if spec.Shape == physics.ShapeBall {
		shape = physics.Ball(cfg.Projectile.SphereRadius)
		clr = cfg.LightGreen
	}

	body, col, err := space.CreateBody(physics.BodyDesc{
		Kind:            physics.Dynamic,
		Shape:           shape,
		Pose:            physics.Pose{Position: spec.Position, Rotation: spec.Rotation},
		LinearVelocity:  spec.LinearVelocity,
		AngularVelocity: spec.AngularVelocity,
		Density:         spec.Density,
		Friction:        cfg.Physics.Friction,
		Restitution:     cfg.Physics.Restitution,
	})
	if err != nil {
		return nil, fmt.Errorf("create projectile body: %w", err)
	}

	p := archetypes.Projectile.Spawn(w)
	components.Projectile.SetValue(p, components.ProjectileData{Shape: spec.Shape, SpawnTick: spec.Tick})
	components.RigidBody.SetValue(p, components.RigidBodyData{Handle: body, Kind: physics.Dynamic})
	components.Collider.SetValue(p, components.ColliderData{Handle: col})
	components.Transform.SetValue(p, components.TransformData{Position: spec.Position, Rotation: spec.Rotation})
	components.Visual.SetValue(p, components.VisualData{Shape: shape, Color: clr})

	return p, nil
}

// DestroyBody removes an entity and its physics body. A body that is already
// gone is not an error.
func DestroyBody(w donburi.World, space physics.Adapter, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.RigidBody) {
		_ = space.RemoveBody(components.RigidBody.Get(e).Handle)
	}
	w.Remove(e.Entity())
}
