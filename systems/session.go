package systems

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/fps01/archetypes"
	"github.com/automoto/fps01/components"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

var (
	ErrNoPlayer        = errors.New("no player entity")
	ErrMultiplePlayers = errors.New("more than one player entity")
)

// CursorController captures or releases the host cursor.
type CursorController interface {
	SetCaptured(captured bool)
}

// Session holds everything a tick touches: the entity world, the physics
// adapter and direct references to the singletons, resolved once.
type Session struct {
	World       donburi.World
	Physics     physics.Adapter
	Player      *donburi.Entry
	Input       *donburi.Entry
	Diagnostics *donburi.Entry
	Cursor      CursorController

	rng         *rand.Rand
	projectiles []donburi.Entity // oldest first
	tick        uint64
	elapsed     float64
}

type SessionOption func(*Session)

// WithCursor makes cursor toggles drive a host cursor.
func WithCursor(c CursorController) SessionOption {
	return func(s *Session) { s.Cursor = c }
}

// WithSeed fixes the projectile randomness.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// NewSession binds a populated world to its physics adapter. Exactly one
// player entity must exist.
func NewSession(w donburi.World, adapter physics.Adapter, opts ...SessionOption) (*Session, error) {
	var players []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		players = append(players, e)
	})
	switch len(players) {
	case 0:
		return nil, ErrNoPlayer
	case 1:
	default:
		return nil, fmt.Errorf("%w: found %d", ErrMultiplePlayers, len(players))
	}

	s := &Session{
		World:   w,
		Physics: adapter,
		Player:  players[0],
		rng:     rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if e, ok := components.Input.First(w); ok {
		s.Input = e
	} else {
		s.Input = archetypes.Input.Spawn(w)
	}
	if e, ok := components.Diagnostics.First(w); ok {
		s.Diagnostics = e
	} else {
		s.Diagnostics = archetypes.Diagnostics.Spawn(w)
	}

	components.Projectile.Each(w, func(e *donburi.Entry) {
		s.projectiles = append(s.projectiles, e.Entity())
	})

	subscribeEvents(w)
	if s.Cursor != nil {
		s.Cursor.SetCaptured(components.Player.Get(s.Player).EnableMouseLook)
	}
	return s, nil
}

// MustNewSession is NewSession for callers that cannot continue without one.
func MustNewSession(w donburi.World, adapter physics.Adapter, opts ...SessionOption) *Session {
	s, err := NewSession(w, adapter, opts...)
	if err != nil {
		log.Error().Str("subsystem", "controller").Err(err).Msg("session precondition failed")
		panic(err)
	}
	return s
}

// Tick runs one simulation step in fixed phase order:
// input, controller, spawns, physics, event drain, pose sync.
func (s *Session) Tick(src InputSource, dt float64) {
	s.tick++
	s.elapsed += dt
	beginDiagnostics(s)

	UpdateInput(s, src)
	ToggleCursor(s)

	UpdatePlayer(s, dt)

	UpdateFire(s)
	UpdateKinematics(s, dt)

	s.Physics.Advance(dt)

	DrainEvents(s)

	stats := SyncPoses(s.World, s.Physics, s.Player.Entity())
	components.Diagnostics.Get(s.Diagnostics).LastSync = stats
	FollowPlayer(s)
	UpdateLight(s)
}

// TickCount is the number of ticks run so far.
func (s *Session) TickCount() uint64 {
	return s.tick
}

// Elapsed is simulated seconds so far.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// LiveProjectiles is the number of projectiles currently alive.
func (s *Session) LiveProjectiles() int {
	return len(s.projectiles)
}
