package systems

import (
	"github.com/automoto/fps01/components"
	"github.com/automoto/fps01/physics"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var kinematicQuery = donburi.NewQuery(filter.Contains(components.Kinematic, components.RigidBody, components.Transform))

// UpdateKinematics steps every tweened platform. The body gets the velocity
// that reaches the next tween point in one tick so it carries what rests on it.
func UpdateKinematics(s *Session, dt float64) {
	if dt <= 0 {
		return
	}
	kinematicQuery.Each(s.World, func(e *donburi.Entry) {
		k := components.Kinematic.Get(e)
		if k.Tween == nil {
			return
		}
		offset, _, done := k.Tween.Update(float32(dt))
		if done {
			k.Tween.Reset()
		}
		target := k.Origin.Add(k.Axis.Mul(float64(offset)))

		rb := components.RigidBody.Get(e)
		body, err := s.Physics.Body(rb.Handle)
		if err != nil {
			log.Debug().Str("subsystem", "kinematic").Err(err).Msg("platform body missing")
			return
		}
		velocity := target.Sub(body.Pose.Position).Mul(1 / dt)
		if err := s.Physics.SetBody(rb.Handle, physics.BodyUpdate{LinearVelocity: &velocity}); err != nil {
			log.Debug().Str("subsystem", "kinematic").Err(err).Msg("platform update failed")
			return
		}
		components.Transform.Get(e).Position = target
	})
}
