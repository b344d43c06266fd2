package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const colliderTag = "collider"

// broadphase hashes every collider's XZ footprint into a resolv space.
// World coordinates are shifted by extent so the origin sits in the middle.
type broadphase struct {
	space   *resolv.Space
	extent  float64
	objects map[ColliderHandle]*resolv.Object
}

func newBroadphase(extent, cell int) *broadphase {
	return &broadphase{
		space:   resolv.NewSpace(extent*2, extent*2, cell, cell),
		extent:  float64(extent),
		objects: map[ColliderHandle]*resolv.Object{},
	}
}

func (bp *broadphase) add(c *collider) {
	ext := c.shape.Extents()
	obj := resolv.NewObject(0, 0, 2*(ext.X()+contactSlop), 2*(ext.Z()+contactSlop), colliderTag)
	obj.Data = c.handle
	bp.place(obj, c.body.pose.Position, ext)
	bp.space.Add(obj)
	bp.objects[c.handle] = obj
}

func (bp *broadphase) place(obj *resolv.Object, pos, ext mgl64.Vec3) {
	obj.X = pos.X() - ext.X() - contactSlop + bp.extent
	obj.Y = pos.Z() - ext.Z() - contactSlop + bp.extent
}

func (bp *broadphase) move(c *collider) {
	obj, ok := bp.objects[c.handle]
	if !ok {
		return
	}
	bp.place(obj, c.body.pose.Position, c.shape.Extents())
	obj.Update()
}

func (bp *broadphase) remove(c *collider) {
	obj, ok := bp.objects[c.handle]
	if !ok {
		return
	}
	bp.space.Remove(obj)
	delete(bp.objects, c.handle)
}

// candidates lists colliders sharing a cell with c. They may not overlap.
func (bp *broadphase) candidates(c *collider) []ColliderHandle {
	obj, ok := bp.objects[c.handle]
	if !ok {
		return nil
	}
	check := obj.Check(0, 0, colliderTag)
	if check == nil {
		return nil
	}
	out := make([]ColliderHandle, 0, len(check.Objects))
	for _, o := range check.Objects {
		if h, ok := o.Data.(ColliderHandle); ok && h != c.handle {
			out = append(out, h)
		}
	}
	return out
}
