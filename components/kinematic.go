package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// KinematicData drives a kinematic body along Axis from Origin by the
// tween's current offset.
type KinematicData struct {
	Tween  *gween.Sequence
	Origin mgl64.Vec3
	Axis   mgl64.Vec3
}

var Kinematic = donburi.NewComponentType[KinematicData]()
