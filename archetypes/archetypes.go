package archetypes

import (
	"github.com/automoto/fps01/components"
	"github.com/automoto/fps01/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.RigidBody,
		components.Collider,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Transform,
		components.RigidBody,
		components.Collider,
		components.Visual,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Transform,
		components.RigidBody,
		components.Collider,
		components.Visual,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Transform,
		components.RigidBody,
		components.Collider,
		components.Visual,
		components.Kinematic,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.RigidBody,
		components.Collider,
		components.Visual,
	)
	Light = newArchetype(
		tags.Light,
		components.Light,
	)
	Input = newArchetype(
		components.Input,
	)
	Diagnostics = newArchetype(
		components.Diagnostics,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
