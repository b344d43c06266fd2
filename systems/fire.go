package systems

import (
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/gamemath"
	"github.com/automoto/fps01/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// UpdateFire launches one projectile per fire press while mouse look is on.
func UpdateFire(s *Session) {
	input := components.Input.Get(s.Input)
	player := components.Player.Get(s.Player)
	if !player.EnableMouseLook {
		return
	}

	if GetAction(input, cfg.ActionFirePrimary).JustPressed {
		launch(s, physics.ShapeCuboid)
	}
	if GetAction(input, cfg.ActionFireSecondary).JustPressed {
		launch(s, physics.ShapeBall)
	}
}

func launch(s *Session, shape physics.ShapeKind) {
	player := components.Player.Get(s.Player)
	transform := components.Transform.Get(s.Player)

	forward := gamemath.ForwardVector(transform.Rotation)
	pc := cfg.Projectile
	spec := factory.ProjectileSpec{
		Shape:           shape,
		Position:        transform.Position.Add(forward.Mul(pc.ForwardOffset)),
		Rotation:        transform.Rotation,
		LinearVelocity:  gamemath.LaunchVelocity(forward, pc.MuzzleSpeed, player.Velocity, pc.InheritVelocity),
		AngularVelocity: gamemath.SpinFromUnit([3]float64{s.rng.Float64(), s.rng.Float64(), s.rng.Float64()}, pc.MaxSpin),
		Density:         gamemath.LerpRange(pc.MinDensity, pc.MaxDensity, s.rng.Float64()),
		Tick:            s.tick,
	}

	e, err := factory.CreateProjectile(s.World, s.Physics, spec)
	if err != nil {
		log.Warn().Str("subsystem", "fire").Err(err).Msg("projectile dropped")
		return
	}
	s.projectiles = append(s.projectiles, e.Entity())
	ProjectileSpawned.Publish(s.World, ProjectileSpawnedEvent{Entity: e.Entity(), Shape: shape})

	for pc.MaxLive > 0 && len(s.projectiles) > pc.MaxLive {
		despawnProjectile(s, s.projectiles[0])
	}
}

// despawnProjectile removes a projectile and forgets it. Entities that are
// already gone are only dropped from the queue.
func despawnProjectile(s *Session, entity donburi.Entity) {
	for i, p := range s.projectiles {
		if p == entity {
			s.projectiles = append(s.projectiles[:i], s.projectiles[i+1:]...)
			break
		}
	}
	if !s.World.Valid(entity) {
		return
	}
	factory.DestroyBody(s.World, s.Physics, s.World.Entry(entity))
	components.Diagnostics.Get(s.Diagnostics).Despawned++
}
