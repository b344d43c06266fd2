package systems

import (
	"math"

	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdateLight orbits every light around the origin.
func UpdateLight(s *Session) {
	angle := s.elapsed / cfg.Light.Period
	pos := mgl64.Vec3{
		math.Sin(angle) * cfg.Light.Radius,
		cfg.Light.Height,
		math.Cos(angle) * cfg.Light.Radius,
	}
	tags.Light.Each(s.World, func(e *donburi.Entry) {
		l := components.Light.Get(e)
		l.Position = pos
		l.Target = mgl64.Vec3{}
	})
}
