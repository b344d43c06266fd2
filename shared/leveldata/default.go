package leveldata

import (
	"github.com/automoto/fps01/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Default is the proving ground used when no TMX arena is given: a wide
// floor, a heavy ball, a dense crate and one moving platform.
func Default() *Arena {
	return &Arena{
		Name: "default",
		Props: []Prop{
			{
				Name:     "floor",
				Kind:     physics.Static,
				Shape:    physics.Cuboid(100, 0.5, 100),
				Friction: 0.5,
				Color:    "gray",
			},
			{
				Name:     "ball",
				Kind:     physics.Dynamic,
				Shape:    physics.Ball(4),
				Position: mgl64.Vec3{5, 10, 5},
				Density:  1,
				Friction: 0.5,
				Color:    "blue",
			},
			{
				Name:     "crate",
				Kind:     physics.Dynamic,
				Shape:    physics.Cuboid(2, 2, 2),
				Position: mgl64.Vec3{0, 10, 0},
				Density:  30,
				Friction: 0.5,
				Color:    "orange",
			},
		},
		Platforms: []Platform{
			{
				Name:     "lift",
				Shape:    physics.Cuboid(2, 0.25, 2),
				Position: mgl64.Vec3{-10, 1, -10},
				Travel:   mgl64.Vec3{0, 4, 0},
				Period:   3,
			},
		},
	}
}
