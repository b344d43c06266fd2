package systems

import (
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/gamemath"
	"github.com/automoto/fps01/systems/factory"
	"github.com/automoto/fps01/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

type ProjectileSpawnedEvent struct {
	Entity donburi.Entity
	Shape  physics.ShapeKind
}

type GroundedChangedEvent struct {
	Grounded bool
}

var (
	ProjectileSpawned = events.NewEventType[ProjectileSpawnedEvent]()
	GroundedChanged   = events.NewEventType[GroundedChangedEvent]()
)

var bodyQuery = donburi.NewQuery(filter.Contains(components.RigidBody))

func subscribeEvents(w donburi.World) {
	ProjectileSpawned.Subscribe(w, onProjectileSpawned)
	GroundedChanged.Subscribe(w, onGroundedChanged)
}

func onProjectileSpawned(w donburi.World, e ProjectileSpawnedEvent) {
	diag, ok := components.Diagnostics.First(w)
	if !ok {
		return
	}
	d := components.Diagnostics.Get(diag)
	d.Spawned++
	d.TotalSpawned++
	log.Debug().Str("subsystem", "fire").Stringer("shape", e.Shape).Msg("projectile spawned")
}

func onGroundedChanged(_ donburi.World, e GroundedChangedEvent) {
	log.Debug().Str("subsystem", "controller").Bool("grounded", e.Grounded).Msg("grounded changed")
}

// beginDiagnostics clears the per-tick counters.
func beginDiagnostics(s *Session) {
	d := components.Diagnostics.Get(s.Diagnostics)
	d.Tick = s.tick
	d.Contacts = 0
	d.Intersections = 0
	d.Spawned = 0
	d.Despawned = 0
	d.Fallen = 0
}

// DrainEvents empties every physics queue once per tick, refreshes the
// player's grounded set, despawns or respawns fallen bodies, then delivers
// queued ECS events.
func DrainEvents(s *Session) {
	d := components.Diagnostics.Get(s.Diagnostics)

	contacts := s.Physics.DrainContactEvents()
	d.Contacts = len(contacts)
	d.TotalContacts += len(contacts)
	updateGrounded(s)

	d.Intersections = len(s.Physics.DrainIntersectionEvents())

	fallen := s.Physics.DrainFallen()
	d.Fallen = len(fallen)
	handleFallen(s, fallen)

	events.ProcessAllEvents(s.World)
}

// updateGrounded rebuilds the ground set from the pairs the player touches
// now, so a contact that turns from wall into floor while held still counts.
func updateGrounded(s *Session) {
	player := components.Player.Get(s.Player)
	self := components.Collider.Get(s.Player).Handle
	was := player.Grounded

	clear(player.Ground)
	for _, c := range s.Physics.Touching(self) {
		other, normal := c.A, gamemath.NormalToward(c.Normal, true)
		if c.A == self {
			other, normal = c.B, gamemath.NormalToward(c.Normal, false)
		}
		if gamemath.IsWalkable(normal, cfg.Player.GroundNormalY) {
			player.Ground[other] = struct{}{}
		}
	}

	player.Grounded = len(player.Ground) > 0
	if player.Grounded != was {
		GroundedChanged.Publish(s.World, GroundedChangedEvent{Grounded: player.Grounded})
	}
}

func handleFallen(s *Session, fallen []physics.BodyHandle) {
	if len(fallen) == 0 {
		return
	}
	lost := make(map[physics.BodyHandle]struct{}, len(fallen))
	for _, h := range fallen {
		lost[h] = struct{}{}
	}

	toRemove := []*donburi.Entry{}
	bodyQuery.Each(s.World, func(e *donburi.Entry) {
		if _, ok := lost[components.RigidBody.Get(e).Handle]; ok {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		switch {
		case e.Entity() == s.Player.Entity():
			respawnPlayer(s)
		case e.HasComponent(tags.Projectile):
			despawnProjectile(s, e.Entity())
		default:
			factory.DestroyBody(s.World, s.Physics, e)
			components.Diagnostics.Get(s.Diagnostics).Despawned++
		}
	}
}

func respawnPlayer(s *Session) {
	player := components.Player.Get(s.Player)
	rb := components.RigidBody.Get(s.Player)

	spawn := player.Spawn
	zero := mgl64.Vec3{}
	if err := s.Physics.SetBody(rb.Handle, physics.BodyUpdate{Position: &spawn, LinearVelocity: &zero}); err != nil {
		log.Error().Str("subsystem", "controller").Err(err).Msg("respawn failed")
		return
	}
	player.Velocity = zero
	log.Info().Str("subsystem", "controller").Msg("player fell out of the arena, respawned")
}
