package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// MovementAxis folds a pair of opposing keys into -1, 0 or +1.
func MovementAxis(plus, minus bool) float64 {
	axis := 0.0
	if plus {
		axis++
	}
	if minus {
		axis--
	}
	return axis
}

// Horizontal drops the vertical component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalSpeed is the XZ magnitude of v.
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return Horizontal(v).Len()
}

// AccelDirection returns the unit horizontal direction for the given forward
// and strafe axes under rotation q, or the zero vector when there is no input.
func AccelDirection(q mgl64.Quat, forwardAxis, strafeAxis float64) mgl64.Vec3 {
	if forwardAxis == 0 && strafeAxis == 0 {
		return mgl64.Vec3{}
	}
	forward := Horizontal(ForwardVector(q))
	strafe := Horizontal(StrafeVector(q))
	combined := strafe.Mul(strafeAxis).Add(forward.Mul(forwardAxis))
	if combined.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return combined.Normalize()
}

// ClampVelocity rescales v when its magnitude exceeds target. The new
// magnitude is the larger of prior and target, but never more than |v|, so
// momentum gained from outside the controller survives one tick while input
// alone can never push past target.
func ClampVelocity(v mgl64.Vec3, prior, target float64) mgl64.Vec3 {
	speed := v.Len()
	if speed <= target {
		return v
	}
	limit := target
	if prior > limit {
		limit = prior
	}
	if limit >= speed {
		return v
	}
	return rescale(v, speed, limit)
}

// rescale sets the magnitude of v to limit without rounding past it.
func rescale(v mgl64.Vec3, speed, limit float64) mgl64.Vec3 {
	out := v.Mul(limit / speed)
	for out.Len() > limit {
		out = out.Mul(math.Nextafter(1, 0))
	}
	return out
}

// ClampHorizontalVelocity applies ClampVelocity to the XZ components and
// keeps the vertical component as is.
func ClampHorizontalVelocity(v mgl64.Vec3, priorHorizontal, target float64) mgl64.Vec3 {
	h := ClampVelocity(Horizontal(v), priorHorizontal, target)
	return mgl64.Vec3{h.X(), v.Y(), h.Z()}
}

// ApplyFrictionVec shortens v by friction, zeroing it instead of reversing.
func ApplyFrictionVec(v mgl64.Vec3, friction float64) mgl64.Vec3 {
	speed := v.Len()
	next := ApplyFriction(speed, friction)
	if next == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(next / speed)
}

// LimitVec hard clamps the magnitude of v to max.
func LimitVec(v mgl64.Vec3, max float64) mgl64.Vec3 {
	speed := v.Len()
	limited := ClampSpeed(speed, max)
	if speed == 0 || limited == speed {
		return v
	}
	return rescale(v, speed, limited)
}
