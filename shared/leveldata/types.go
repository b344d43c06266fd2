// Package leveldata turns arena TMX files into body descriptions.
// It has no dependencies on ebitengine or donburi, pure data only.
package leveldata

import (
	"github.com/automoto/fps01/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Arena is everything needed to populate a scene.
type Arena struct {
	Name      string
	Props     []Prop
	Platforms []Platform
	Spawn     mgl64.Vec3
	HasSpawn  bool
}

// Prop is a static or dynamic body placed at load time.
type Prop struct {
	Name     string
	Kind     physics.BodyKind
	Shape    physics.Shape
	Position mgl64.Vec3
	Density  float64
	Friction float64
	Color    string
}

// Platform is a kinematic cuboid moving back and forth between Position and
// Position+Travel, taking Period seconds per leg.
type Platform struct {
	Name     string
	Shape    physics.Shape
	Position mgl64.Vec3
	Travel   mgl64.Vec3
	Period   float64
}
