package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// cursor captures the OS cursor for mouse look.
type cursor struct {
	captured bool
}

func (c *cursor) SetCaptured(captured bool) {
	c.captured = captured
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	log.Debug().Str("subsystem", "input").Bool("captured", captured).Msg("cursor mode")
}
