package systems

import (
	"testing"

	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/leveldata"
	"github.com/automoto/fps01/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const tickDT = 1.0 / 60

type fakeInput struct {
	held    map[cfg.ActionID]bool
	presses []cfg.ActionID
	mouse   mgl64.Vec2
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[cfg.ActionID]bool{}}
}

func (f *fakeInput) Held(a cfg.ActionID) bool { return f.held[a] }

func (f *fakeInput) DrainPresses() []cfg.ActionID {
	p := f.presses
	f.presses = nil
	return p
}

func (f *fakeInput) DrainMouseMotion() mgl64.Vec2 {
	m := f.mouse
	f.mouse = mgl64.Vec2{}
	return m
}

func (f *fakeInput) press(a cfg.ActionID) {
	f.presses = append(f.presses, a)
}

type fakeCursor struct {
	calls []bool
}

func (c *fakeCursor) SetCaptured(captured bool) {
	c.calls = append(c.calls, captured)
}

// newArenaSession builds the default arena on a fresh physics world.
func newArenaSession(t *testing.T, opts ...SessionOption) (*Session, *physics.World) {
	t.Helper()
	return newSessionWith(t, leveldata.Default(), opts...)
}

func newSessionWith(t *testing.T, arena *leveldata.Arena, opts ...SessionOption) (*Session, *physics.World) {
	t.Helper()
	w := donburi.NewWorld()
	space := physics.NewWorld(cfg.DefaultPhysics())
	_, err := factory.CreateArena(w, space, arena)
	require.NoError(t, err)

	s, err := NewSession(w, space, opts...)
	require.NoError(t, err)
	return s, space
}

func run(s *Session, in InputSource, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Tick(in, tickDT)
	}
}

// withConfig swaps a config global for the duration of a test.
func withConfig[T any](t *testing.T, target *T, value T) {
	t.Helper()
	old := *target
	*target = value
	t.Cleanup(func() { *target = old })
}
