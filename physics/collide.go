package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// manifold is a single contact. normal points from the first collider to the
// second; depth is negative when the shapes are within contactSlop but apart.
type manifold struct {
	normal mgl64.Vec3
	depth  float64
}

func collide(a, b *collider) (manifold, bool) {
	pa, pb := a.body.pose.Position, b.body.pose.Position
	aBall, bBall := a.shape.Kind == ShapeBall, b.shape.Kind == ShapeBall

	switch {
	case aBall && bBall:
		return sphereSphere(pa, a.shape.Radius, pb, b.shape.Radius)
	case aBall:
		m, ok := sphereBox(pa, a.shape.Radius, pb, b.shape.Extents())
		m.normal = m.normal.Mul(-1)
		return m, ok
	case bBall:
		return sphereBox(pb, b.shape.Radius, pa, a.shape.Extents())
	default:
		return boxBox(pa, a.shape.Extents(), pb, b.shape.Extents())
	}
}

func boxBox(pa, ea, pb, eb mgl64.Vec3) (manifold, bool) {
	d := pb.Sub(pa)
	best := manifold{depth: math.Inf(1)}
	for i := 0; i < 3; i++ {
		overlap := ea[i] + eb[i] - math.Abs(d[i])
		if overlap < -contactSlop {
			return manifold{}, false
		}
		if overlap < best.depth {
			var n mgl64.Vec3
			n[i] = 1
			if d[i] < 0 {
				n[i] = -1
			}
			best = manifold{normal: n, depth: overlap}
		}
	}
	return best, true
}

// sphereBox returns the normal from the box toward the sphere.
func sphereBox(center mgl64.Vec3, radius float64, boxPos, ext mgl64.Vec3) (manifold, bool) {
	local := center.Sub(boxPos)
	closest := mgl64.Vec3{
		mgl64.Clamp(local[0], -ext[0], ext[0]),
		mgl64.Clamp(local[1], -ext[1], ext[1]),
		mgl64.Clamp(local[2], -ext[2], ext[2]),
	}
	diff := local.Sub(closest)
	dist := diff.Len()
	if dist > radius+contactSlop {
		return manifold{}, false
	}
	if dist > 1e-9 {
		return manifold{normal: diff.Mul(1 / dist), depth: radius - dist}, true
	}

	// center inside the box: leave through the nearest face
	best := manifold{depth: math.Inf(1)}
	for i := 0; i < 3; i++ {
		pen := ext[i] - math.Abs(local[i])
		if pen < best.depth {
			var n mgl64.Vec3
			n[i] = 1
			if local[i] < 0 {
				n[i] = -1
			}
			best = manifold{normal: n, depth: pen}
		}
	}
	best.depth += radius
	return best, true
}

func sphereSphere(pa mgl64.Vec3, ra float64, pb mgl64.Vec3, rb float64) (manifold, bool) {
	d := pb.Sub(pa)
	dist := d.Len()
	if dist > ra+rb+contactSlop {
		return manifold{}, false
	}
	n := mgl64.Vec3{0, 1, 0}
	if dist > 1e-9 {
		n = d.Mul(1 / dist)
	}
	return manifold{normal: n, depth: ra + rb - dist}, true
}
