package systems

import (
	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/go-gl/mathgl/mgl64"
)

// InputSource is the host input surface. Drain methods consume everything
// queued since the previous call.
type InputSource interface {
	Held(action cfg.ActionID) bool
	DrainPresses() []cfg.ActionID
	DrainMouseMotion() mgl64.Vec2
}

// UpdateInput takes this tick's snapshot from src. It must drain every
// queue in one pass so no motion or press carries into later ticks.
func UpdateInput(s *Session, src InputSource) {
	input := components.Input.Get(s.Input)

	input.JustPressed = [cfg.ActionCount]bool{}
	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		input.Held[a] = src.Held(a)
	}
	for _, a := range src.DrainPresses() {
		if a > cfg.ActionNone && a < cfg.ActionCount {
			input.JustPressed[a] = true
		}
	}
	input.MouseDelta = src.DrainMouseMotion()
}

// GetAction returns the state of an action in the current snapshot.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:     input.Held[action],
		JustPressed: input.JustPressed[action],
	}
}

// ToggleCursor flips mouse look, keyboard movement and the host cursor
// capture together, once per press.
func ToggleCursor(s *Session) {
	input := components.Input.Get(s.Input)
	if !GetAction(input, cfg.ActionToggleCursor).JustPressed {
		return
	}

	player := components.Player.Get(s.Player)
	player.EnableMouseLook = !player.EnableMouseLook
	player.EnableKeyboardMove = !player.EnableKeyboardMove
	if s.Cursor != nil {
		s.Cursor.SetCaptured(player.EnableMouseLook)
	}
}
