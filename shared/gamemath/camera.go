package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ViewProjection is the combined camera matrix for an eye at eye looking
// along rotation q.
func ViewProjection(eye mgl64.Vec3, q mgl64.Quat, fovDeg, aspect, near, far float64) mgl64.Mat4 {
	view := mgl64.LookAtV(eye, eye.Add(ForwardVector(q)), q.Rotate(Up))
	proj := mgl64.Perspective(mgl64.DegToRad(fovDeg), aspect, near, far)
	return proj.Mul4(view)
}

const minClipW = 1e-3

// Project maps a world point to screen pixels. Points behind the camera are
// not projected.
func Project(viewProj mgl64.Mat4, p mgl64.Vec3, width, height float64) (mgl64.Vec2, bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= minClipW {
		return mgl64.Vec2{}, false
	}
	return toScreen(clip, width, height), true
}

// ProjectSegment projects a line segment, cutting off the part behind the
// camera.
func ProjectSegment(viewProj mgl64.Mat4, a, b mgl64.Vec3, width, height float64) (mgl64.Vec2, mgl64.Vec2, bool) {
	ca := viewProj.Mul4x1(a.Vec4(1))
	cb := viewProj.Mul4x1(b.Vec4(1))
	aIn, bIn := ca.W() > minClipW, cb.W() > minClipW
	switch {
	case !aIn && !bIn:
		return mgl64.Vec2{}, mgl64.Vec2{}, false
	case !aIn:
		ca = clipAt(ca, cb)
	case !bIn:
		cb = clipAt(cb, ca)
	}
	return toScreen(ca, width, height), toScreen(cb, width, height), true
}

// clipAt moves out toward in until it sits on the w = minClipW plane.
func clipAt(out, in mgl64.Vec4) mgl64.Vec4 {
	t := (minClipW - out.W()) / (in.W() - out.W())
	return out.Add(in.Sub(out).Mul(t))
}

func toScreen(clip mgl64.Vec4, width, height float64) mgl64.Vec2 {
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl64.Vec2{
		(ndc.X() + 1) / 2 * width,
		(1 - ndc.Y()) / 2 * height,
	}
}

// BoxCorners returns the eight corners of a box with half extents ext placed
// at pose, in the order used by BoxEdges.
func BoxCorners(center mgl64.Vec3, q mgl64.Quat, ext mgl64.Vec3) [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		local := mgl64.Vec3{ext.X(), ext.Y(), ext.Z()}
		if i&1 != 0 {
			local[0] = -local[0]
		}
		if i&2 != 0 {
			local[1] = -local[1]
		}
		if i&4 != 0 {
			local[2] = -local[2]
		}
		out[i] = center.Add(q.Rotate(local))
	}
	return out
}

// BoxEdges indexes corner pairs differing in exactly one axis.
var BoxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
