package scenes

import (
	cfg "github.com/automoto/fps01/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputBinding maps one action to keys and mouse buttons.
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMoveForward:   {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
	cfg.ActionMoveBack:      {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
	cfg.ActionMoveLeft:      {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
	cfg.ActionMoveRight:     {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
	cfg.ActionJump:          {Keys: []ebiten.Key{ebiten.KeySpace}},
	cfg.ActionToggleCursor:  {Keys: []ebiten.Key{ebiten.KeyEscape}},
	cfg.ActionFirePrimary:   {MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft}},
	cfg.ActionFireSecondary: {MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight}},
}

// HostInput reads ebiten's keyboard and mouse once per frame and serves it
// to the session as an input source.
type HostInput struct {
	held    [cfg.ActionCount]bool
	presses []cfg.ActionID
	motion  mgl64.Vec2

	lastX, lastY int
	primed       bool
}

func NewHostInput() *HostInput {
	return &HostInput{}
}

// Poll samples the devices. Call it once per frame before the tick.
func (h *HostInput) Poll(captured bool) {
	h.held = [cfg.ActionCount]bool{}
	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				h.held[action] = true
			}
			if inpututil.IsKeyJustPressed(key) {
				h.presses = append(h.presses, action)
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				h.held[action] = true
			}
			if captured && inpututil.IsMouseButtonJustPressed(btn) {
				h.presses = append(h.presses, action)
			}
		}
	}

	x, y := ebiten.CursorPosition()
	if h.primed && captured {
		h.motion = h.motion.Add(mgl64.Vec2{float64(x - h.lastX), float64(y - h.lastY)})
	}
	h.lastX, h.lastY = x, y
	h.primed = true
}

// Inject queues a press that did not come from a device.
func (h *HostInput) Inject(action cfg.ActionID) {
	h.presses = append(h.presses, action)
}

func (h *HostInput) Held(action cfg.ActionID) bool {
	return h.held[action]
}

func (h *HostInput) DrainPresses() []cfg.ActionID {
	p := h.presses
	h.presses = nil
	return p
}

func (h *HostInput) DrainMouseMotion() mgl64.Vec2 {
	m := h.motion
	h.motion = mgl64.Vec2{}
	return m
}
