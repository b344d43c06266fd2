package components

import (
	"image/color"

	"github.com/automoto/fps01/physics"
	"github.com/yohamta/donburi"
)

type VisualData struct {
	Shape physics.Shape
	Color color.RGBA
}

var Visual = donburi.NewComponentType[VisualData]()
