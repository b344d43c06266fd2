package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Down    = mgl64.Vec3{0, -1, 0}
	Forward = mgl64.Vec3{0, 0, -1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// LookState is the accumulated view angle in degrees. Pitch is positive when
// looking down, matching screen-space mouse Y.
type LookState struct {
	Yaw   float64
	Pitch float64
}

// UpdateLook applies one tick of mouse motion to the view angles. A delta
// with a NaN or infinite component leaves the state untouched and reports
// false.
func UpdateLook(look *LookState, delta mgl64.Vec2, dt, sensitivity, pitchLimit float64) bool {
	if !finite(delta.X()) || !finite(delta.Y()) {
		return false
	}
	if delta.X() != 0 {
		look.Yaw -= delta.X() * sensitivity * dt
	}
	if delta.Y() != 0 {
		look.Pitch += delta.Y() * sensitivity * dt
	}
	look.Pitch = mgl64.Clamp(look.Pitch, -pitchLimit, pitchLimit)
	return true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// LookRotation composes yaw about world up with pitch about the local right
// axis into a unit rotation.
func LookRotation(look LookState) mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(look.Yaw), Up)
	pitch := mgl64.QuatRotate(mgl64.DegToRad(look.Pitch), Right.Mul(-1))
	return yaw.Mul(pitch).Normalize()
}

// ForwardVector is the view direction of q.
func ForwardVector(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// StrafeVector points to the left of the view direction.
func StrafeVector(q mgl64.Quat) mgl64.Vec3 {
	return ForwardVector(q).Cross(Down)
}
