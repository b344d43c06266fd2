package components

import (
	"github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Look     gamemath.LookState
	Velocity mgl64.Vec3 // written only by the controller

	EnableMouseLook    bool
	EnableKeyboardMove bool

	TargetSpeed  float64
	Acceleration float64
	JumpImpulse  float64
	ClampMode    config.ClampMode
	Mode         config.MovementMode

	Grounded  bool
	Ground    map[physics.ColliderHandle]struct{} // colliders currently under the player
	JumpTimer float64                             // seconds until the next jump is allowed

	Spawn mgl64.Vec3
}

var Player = donburi.NewComponentType[PlayerData]()

// NewPlayerData returns a controller state seeded from the player config.
func NewPlayerData(cfg config.PlayerConfig) PlayerData {
	return PlayerData{
		EnableMouseLook:    true,
		EnableKeyboardMove: true,
		TargetSpeed:        cfg.TargetSpeed,
		Acceleration:       cfg.Acceleration,
		JumpImpulse:        cfg.JumpImpulse,
		ClampMode:          cfg.ClampMode,
		Mode:               cfg.MovementMode,
		Ground:             map[physics.ColliderHandle]struct{}{},
		Spawn:              cfg.Spawn,
	}
}
