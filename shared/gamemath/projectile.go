package gamemath

import "github.com/go-gl/mathgl/mgl64"

// LaunchVelocity returns the initial projectile velocity: the view direction
// at muzzle speed plus a share of the thrower's own velocity.
func LaunchVelocity(forward mgl64.Vec3, muzzleSpeed float64, carrier mgl64.Vec3, inherit float64) mgl64.Vec3 {
	if l := forward.Len(); l > 0 {
		forward = forward.Mul(1 / l)
	}
	return forward.Mul(muzzleSpeed).Add(carrier.Mul(inherit))
}

// LerpRange maps t in [0, 1] onto [lo, hi].
func LerpRange(lo, hi, t float64) float64 {
	return lo + t*(hi-lo)
}

// SpinFromUnit maps three samples in [0, 1) to an angular velocity with each
// axis in [-max, max).
func SpinFromUnit(u [3]float64, max float64) mgl64.Vec3 {
	return mgl64.Vec3{
		LerpRange(-max, max, u[0]),
		LerpRange(-max, max, u[1]),
		LerpRange(-max, max, u[2]),
	}
}
