package systems

import (
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
)

// UpdatePlayer is the controller phase: one read-modify-write of the player
// body. The camera rotation is written here so pose sync never touches it.
func UpdatePlayer(s *Session, dt float64) {
	player := components.Player.Get(s.Player)
	input := components.Input.Get(s.Input)
	rb := components.RigidBody.Get(s.Player)

	body, err := s.Physics.Body(rb.Handle)
	if err != nil {
		log.Error().Str("subsystem", "controller").Err(err).Msg("player body missing")
		return
	}

	if player.JumpTimer > 0 {
		player.JumpTimer -= dt
	}

	orientation := UpdateOrientation(player, input.MouseDelta, dt)

	var velocity mgl64.Vec3
	switch player.Mode {
	case cfg.MovementKinematic:
		velocity = UpdateVelocityKinematic(player, input, orientation, dt)
	default:
		velocity = UpdateVelocity(player, input, orientation, body.LinearVelocity)
	}
	player.Velocity = velocity

	zero := mgl64.Vec3{}
	if err := s.Physics.SetBody(rb.Handle, physics.BodyUpdate{
		Rotation:        &orientation,
		LinearVelocity:  &velocity,
		AngularVelocity: &zero,
	}); err != nil {
		log.Error().Str("subsystem", "controller").Err(err).Msg("write player body")
		return
	}

	components.Transform.Get(s.Player).Rotation = orientation
}

// UpdateOrientation applies mouse look and returns the resulting rotation.
// Disabled look and non-finite deltas leave the angles as they were.
func UpdateOrientation(player *components.PlayerData, delta mgl64.Vec2, dt float64) mgl64.Quat {
	if player.EnableMouseLook {
		gamemath.UpdateLook(&player.Look, delta, dt, cfg.Player.Sensitivity, cfg.Player.PitchLimit)
	}
	return gamemath.LookRotation(player.Look)
}

func moveDirection(player *components.PlayerData, input *components.InputData, orientation mgl64.Quat) mgl64.Vec3 {
	if !player.EnableKeyboardMove {
		return mgl64.Vec3{}
	}
	forward := gamemath.MovementAxis(input.Held[cfg.ActionMoveForward], input.Held[cfg.ActionMoveBack])
	strafe := gamemath.MovementAxis(input.Held[cfg.ActionMoveLeft], input.Held[cfg.ActionMoveRight])
	return gamemath.AccelDirection(orientation, forward, strafe)
}

// UpdateVelocity is the physics-backed movement model. The acceleration is a
// per-tick impulse on top of the velocity the body actually has, then the
// speed clamp, then the jump.
func UpdateVelocity(player *components.PlayerData, input *components.InputData, orientation mgl64.Quat, bodyVelocity mgl64.Vec3) mgl64.Vec3 {
	accel := moveDirection(player, input, orientation).Mul(player.Acceleration)
	candidate := bodyVelocity.Add(accel)

	var velocity mgl64.Vec3
	switch player.ClampMode {
	case cfg.ClampFull:
		velocity = gamemath.ClampVelocity(candidate, bodyVelocity.Len(), player.TargetSpeed)
	default:
		velocity = gamemath.ClampHorizontalVelocity(candidate, gamemath.HorizontalSpeed(bodyVelocity), player.TargetSpeed)
	}

	if tryJump(player, input) {
		velocity = velocity.Add(gamemath.Up.Mul(player.JumpImpulse))
	}
	return velocity
}

// UpdateVelocityKinematic integrates the controller's own planar velocity:
// acceleration, then dt-scaled friction that stops rather than reverses,
// then a hard clamp.
func UpdateVelocityKinematic(player *components.PlayerData, input *components.InputData, orientation mgl64.Quat, dt float64) mgl64.Vec3 {
	velocity := gamemath.Horizontal(player.Velocity)
	dir := moveDirection(player, input, orientation)
	velocity = velocity.Add(dir.Mul(cfg.Player.KinematicAccel * dt))
	velocity = gamemath.ApplyFrictionVec(velocity, cfg.Player.KinematicFriction*dt)
	return gamemath.LimitVec(velocity, player.TargetSpeed)
}

func tryJump(player *components.PlayerData, input *components.InputData) bool {
	if !player.EnableKeyboardMove || !GetAction(input, cfg.ActionJump).Pressed {
		return false
	}
	if cfg.Player.RequireGround && !player.Grounded {
		return false
	}
	if player.JumpTimer > 0 {
		return false
	}
	player.JumpTimer = cfg.Player.JumpCooldown
	return true
}
