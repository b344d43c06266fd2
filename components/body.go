package components

import (
	"github.com/automoto/fps01/physics"
	"github.com/yohamta/donburi"
)

// RigidBodyData links an entity to its physics body. The world owns the
// body; the handle may go stale.
type RigidBodyData struct {
	Handle physics.BodyHandle
	Kind   physics.BodyKind
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()

type ColliderData struct {
	Handle physics.ColliderHandle
}

var Collider = donburi.NewComponentType[ColliderData]()
