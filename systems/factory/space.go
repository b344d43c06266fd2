package factory

import (
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
)

// CreateSpace builds the physics world from the current physics config.
func CreateSpace() *physics.World {
	return physics.NewWorld(cfg.Physics)
}
