package gamemath

import "github.com/go-gl/mathgl/mgl64"

// NormalToward orients a contact normal reported from A to B so it points at
// the chosen side.
func NormalToward(normal mgl64.Vec3, towardB bool) mgl64.Vec3 {
	if towardB {
		return normal
	}
	return normal.Mul(-1)
}

// IsWalkable reports whether a surface with the given normal (pointing at the
// mover) counts as floor.
func IsWalkable(normal mgl64.Vec3, minY float64) bool {
	return normal.Y() >= minY
}
