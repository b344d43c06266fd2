package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type LightData struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
}

var Light = donburi.NewComponentType[LightData]()
