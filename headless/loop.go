package headless

import (
	"sync"
	"time"

	"github.com/automoto/fps01/components"
	"github.com/automoto/fps01/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Stepper is an input source that advances once per tick. Next reports
// false when it has nothing more to play.
type Stepper interface {
	systems.InputSource
	Next() bool
}

// Summary describes the state of a session after a headless run.
type Summary struct {
	Ticks           uint64
	Elapsed         float64
	TotalContacts   int
	TotalSpawned    int
	LiveProjectiles int
	PlayerPosition  mgl64.Vec3
	Grounded        bool
}

func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("ticks", s.Ticks).
		Float64("elapsed", s.Elapsed).
		Int("contacts", s.TotalContacts).
		Int("spawned", s.TotalSpawned).
		Int("projectiles", s.LiveProjectiles).
		Floats64("player", s.PlayerPosition[:]).
		Bool("grounded", s.Grounded)
}

// Loop runs a session at a fixed tick rate without a window.
type Loop struct {
	session  *systems.Session
	input    Stepper
	tickRate int
	maxTicks uint64
	realtime bool

	stopChan chan struct{}
	stopOnce sync.Once
}

type Option func(*Loop)

// WithMaxTicks stops the loop after n ticks. Zero runs until the input
// ends or Stop is called.
func WithMaxTicks(n uint64) Option {
	return func(l *Loop) { l.maxTicks = n }
}

// WithRealtime paces ticks with a wall clock ticker instead of running
// them back to back.
func WithRealtime() Option {
	return func(l *Loop) { l.realtime = true }
}

func NewLoop(session *systems.Session, input Stepper, tickRate int, opts ...Option) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	l := &Loop{
		session:  session,
		input:    input,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) logger() zerolog.Logger {
	return log.With().Str("subsystem", "loop").Logger()
}

// Run blocks until the input ends, the tick limit is reached or Stop is
// called, and returns the final summary.
func (l *Loop) Run() Summary {
	logger := l.logger()
	logger.Info().Int("rate", l.tickRate).Bool("realtime", l.realtime).Msg("loop started")

	var tick <-chan time.Time
	if l.realtime {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-l.stopChan:
				return l.finish(logger, "stopped")
			case <-tick:
			}
		} else {
			select {
			case <-l.stopChan:
				return l.finish(logger, "stopped")
			default:
			}
		}

		if !l.input.Next() {
			return l.finish(logger, "input ended")
		}
		l.tick()
		if l.maxTicks > 0 && l.session.TickCount() >= l.maxTicks {
			return l.finish(logger, "tick limit")
		}
	}
}

// Stop ends a running loop. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) tick() {
	l.session.Tick(l.input, 1/float64(l.tickRate))

	d := components.Diagnostics.Get(l.session.Diagnostics)
	if d.Contacts > 0 || d.Spawned > 0 || d.Fallen > 0 {
		log.Debug().
			Str("subsystem", "loop").
			Uint64("tick", d.Tick).
			Int("contacts", d.Contacts).
			Int("spawned", d.Spawned).
			Int("fallen", d.Fallen).
			Msg("tick events")
	}
}

// Summarize reports the current session state.
func (l *Loop) Summarize() Summary {
	s := l.session
	d := components.Diagnostics.Get(s.Diagnostics)
	player := components.Player.Get(s.Player)
	return Summary{
		Ticks:           s.TickCount(),
		Elapsed:         s.Elapsed(),
		TotalContacts:   d.TotalContacts,
		TotalSpawned:    d.TotalSpawned,
		LiveProjectiles: s.LiveProjectiles(),
		PlayerPosition:  components.Transform.Get(s.Player).Position,
		Grounded:        player.Grounded,
	}
}

func (l *Loop) finish(logger zerolog.Logger, reason string) Summary {
	summary := l.Summarize()
	logger.Info().Str("reason", reason).EmbedObject(summary).Msg("loop finished")
	return summary
}
