package factory

import (
	"fmt"

	"github.com/automoto/fps01/archetypes"
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateProp spawns a static or dynamic arena body. Static props get their
// transform here and nowhere else.
func CreateProp(w donburi.World, space physics.Adapter, prop leveldata.Prop) (*donburi.Entry, error) {
	pose := physics.At(prop.Position)
	body, col, err := space.CreateBody(physics.BodyDesc{
		Kind:        prop.Kind,
		Shape:       prop.Shape,
		Pose:        pose,
		Density:     prop.Density,
		Friction:    prop.Friction,
		Restitution: cfg.Physics.Restitution,
	})
	if err != nil {
		return nil, fmt.Errorf("create prop %q: %w", prop.Name, err)
	}

	arch := archetypes.Prop
	fallback := cfg.LightBlue
	if prop.Kind == physics.Static {
		arch = archetypes.Floor
		fallback = cfg.Gray
	}

	e := arch.Spawn(w)
	components.RigidBody.SetValue(e, components.RigidBodyData{Handle: body, Kind: prop.Kind})
	components.Collider.SetValue(e, components.ColliderData{Handle: col})
	components.Transform.SetValue(e, components.TransformData{Position: pose.Position, Rotation: pose.Rotation})
	components.Visual.SetValue(e, components.VisualData{Shape: prop.Shape, Color: colorByName(prop.Color, fallback)})

	return e, nil
}
