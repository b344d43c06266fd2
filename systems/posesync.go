package systems

import (
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var syncQuery = donburi.NewQuery(filter.Contains(components.RigidBody, components.Transform))

// SyncPoses copies each dynamic body's pose onto its transform. It only
// reads from bodies. The skip entity is left to its own writer.
func SyncPoses(w donburi.World, bodies physics.BodyReader, skip donburi.Entity) components.SyncStats {
	var stats components.SyncStats
	syncQuery.Each(w, func(e *donburi.Entry) {
		rb := components.RigidBody.Get(e)
		if e.Entity() == skip || rb.Kind != physics.Dynamic {
			stats.Skipped++
			return
		}

		state, err := bodies.Body(rb.Handle)
		if err != nil {
			stats.Stale++
			return
		}

		t := components.Transform.Get(e)
		t.Position = state.Pose.Position
		t.Rotation = state.Pose.Rotation
		stats.Synced++
	})
	return stats
}

// FollowPlayer moves the camera to the player body's eye point. Rotation
// stays as the controller wrote it.
func FollowPlayer(s *Session) {
	rb := components.RigidBody.Get(s.Player)
	state, err := s.Physics.Body(rb.Handle)
	if err != nil {
		return
	}
	components.Transform.Get(s.Player).Position = state.Pose.Position.Add(mgl64.Vec3{0, cfg.Camera.EyeOffset, 0})
}
