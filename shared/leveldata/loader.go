package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/fps01/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

const (
	groupBodies    = "Bodies"
	groupSpawn     = "PlayerSpawn"
	groupPlatforms = "Platforms"

	defaultHeight  = 1.0
	defaultPeriod  = 2.0
	defaultDensity = 1.0
)

// Load parses an arena TMX file. One tile is one world unit; the map center
// is the world origin, TMX X maps to world X and TMX Y to world Z. Heights
// come from object properties.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	p := projector{
		unitX:   float64(levelMap.TileWidth),
		unitZ:   float64(levelMap.TileHeight),
		originX: float64(levelMap.Width) / 2,
		originZ: float64(levelMap.Height) / 2,
	}

	arena := &Arena{Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupBodies:
			for _, o := range og.Objects {
				prop, err := p.prop(o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				arena.Props = append(arena.Props, prop)
			}
		case groupPlatforms:
			for _, o := range og.Objects {
				arena.Platforms = append(arena.Platforms, p.platform(o))
			}
		case groupSpawn:
			if len(og.Objects) == 0 || arena.HasSpawn {
				continue
			}
			o := og.Objects[0]
			x, z := p.center(o)
			arena.Spawn = mgl64.Vec3{x, o.Properties.GetFloat("y"), z}
			arena.HasSpawn = true
		}
	}

	if len(arena.Props) == 0 {
		return nil, fmt.Errorf("load TMX %s: no objects in %q group", tmxPath, groupBodies)
	}
	return arena, nil
}

type projector struct {
	unitX, unitZ     float64
	originX, originZ float64
}

func (p projector) center(o *tiled.Object) (x, z float64) {
	x = (o.X+o.Width/2)/p.unitX - p.originX
	z = (o.Y+o.Height/2)/p.unitZ - p.originZ
	return x, z
}

func (p projector) prop(o *tiled.Object) (Prop, error) {
	x, z := p.center(o)
	props := o.Properties

	var kind physics.BodyKind
	switch k := props.GetString("kind"); k {
	case "", "static":
		kind = physics.Static
	case "dynamic":
		kind = physics.Dynamic
	default:
		return Prop{}, fmt.Errorf("object %q: unknown kind %q", o.Name, k)
	}

	var shape physics.Shape
	switch s := props.GetString("shape"); s {
	case "", "cuboid":
		height := props.GetFloat("height")
		if height <= 0 {
			height = defaultHeight
		}
		shape = physics.Cuboid(o.Width/p.unitX/2, height/2, o.Height/p.unitZ/2)
	case "ball":
		shape = physics.Ball(o.Width / p.unitX / 2)
	default:
		return Prop{}, fmt.Errorf("object %q: unknown shape %q", o.Name, s)
	}

	density := props.GetFloat("density")
	if density <= 0 {
		density = defaultDensity
	}

	return Prop{
		Name:     o.Name,
		Kind:     kind,
		Shape:    shape,
		Position: mgl64.Vec3{x, props.GetFloat("y"), z},
		Density:  density,
		Friction: props.GetFloat("friction"),
		Color:    props.GetString("color"),
	}, nil
}

func (p projector) platform(o *tiled.Object) Platform {
	x, z := p.center(o)
	props := o.Properties

	height := props.GetFloat("height")
	if height <= 0 {
		height = defaultHeight / 2
	}
	period := props.GetFloat("period")
	if period <= 0 {
		period = defaultPeriod
	}

	return Platform{
		Name:     o.Name,
		Shape:    physics.Cuboid(o.Width/p.unitX/2, height/2, o.Height/p.unitZ/2),
		Position: mgl64.Vec3{x, props.GetFloat("y"), z},
		Travel: mgl64.Vec3{
			props.GetFloat("travelX"),
			props.GetFloat("travelY"),
			props.GetFloat("travelZ"),
		},
		Period: period,
	}
}
