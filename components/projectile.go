package components

import (
	"github.com/automoto/fps01/physics"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Shape     physics.ShapeKind
	SpawnTick uint64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
