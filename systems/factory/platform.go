package factory

import (
	"fmt"

	"github.com/automoto/fps01/archetypes"
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreatePlatform spawns a kinematic platform that shuttles along its travel
// vector and back.
func CreatePlatform(w donburi.World, space physics.Adapter, p leveldata.Platform) (*donburi.Entry, error) {
	pose := physics.At(p.Position)
	body, col, err := space.CreateBody(physics.BodyDesc{
		Kind:     physics.Kinematic,
		Shape:    p.Shape,
		Pose:     pose,
		Friction: cfg.Physics.Friction,
	})
	if err != nil {
		return nil, fmt.Errorf("create platform %q: %w", p.Name, err)
	}

	platform := archetypes.Platform.Spawn(w)
	components.RigidBody.SetValue(platform, components.RigidBodyData{Handle: body, Kind: physics.Kinematic})
	components.Collider.SetValue(platform, components.ColliderData{Handle: col})
	components.Transform.SetValue(platform, components.TransformData{Position: pose.Position, Rotation: pose.Rotation})
	components.Visual.SetValue(platform, components.VisualData{Shape: p.Shape, Color: cfg.Yellow})

	// The platform follows a *gween.Sequence from 0 to 1 and back, scaled by Travel.
	period := float32(p.Period)
	tw := gween.NewSequence(
		gween.New(0, 1, period, ease.InOutQuad),
		gween.New(1, 0, period, ease.InOutQuad),
	)
	components.Kinematic.SetValue(platform, components.KinematicData{
		Tween:  tw,
		Origin: p.Position,
		Axis:   p.Travel,
	})

	return platform, nil
}
