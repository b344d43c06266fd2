package factory

import (
	"github.com/automoto/fps01/archetypes"
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func CreateLight(w donburi.World) *donburi.Entry {
	light := archetypes.Light.Spawn(w)
	components.Light.SetValue(light, components.LightData{
		Position: mgl64.Vec3{0, cfg.Light.Height, cfg.Light.Radius},
	})
	return light
}
