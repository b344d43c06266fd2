package components

import (
	cfg "github.com/automoto/fps01/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this tick
}

// InputData is one tick's input snapshot. Held is the level state,
// JustPressed the press edges drained this tick.
type InputData struct {
	Held        [cfg.ActionCount]bool
	JustPressed [cfg.ActionCount]bool
	MouseDelta  mgl64.Vec2
}

var Input = donburi.NewComponentType[InputData]()
