package scenes

import (
	"errors"
	"image/color"
	"sync"
	"time"

	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/render"
	"github.com/automoto/fps01/shared/leveldata"
	"github.com/automoto/fps01/systems"
	"github.com/automoto/fps01/systems/factory"
	"github.com/automoto/fps01/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrQuit is returned from Update when the player asks to leave.
var ErrQuit = errors.New("quit requested")

// FirstPersonScene runs one arena with the local player.
type FirstPersonScene struct {
	ecs     *ecs.ECS
	session *systems.Session
	input   *HostInput
	cursor  *cursor
	pause   *ui.PauseUI
	arena   *leveldata.Arena
	once    sync.Once

	resume bool
	quit   bool
}

func NewFirstPersonScene(arena *leveldata.Arena) *FirstPersonScene {
	if arena == nil {
		arena = leveldata.Default()
	}
	return &FirstPersonScene{arena: arena}
}

func (fs *FirstPersonScene) Update() error {
	fs.once.Do(fs.configure)

	if fs.quit {
		return ErrQuit
	}
	if fs.resume {
		fs.resume = false
		fs.input.Inject(cfg.ActionToggleCursor)
	}

	fs.input.Poll(fs.cursor.captured)
	fs.ecs.Update()

	if !fs.cursor.captured {
		fs.pause.Update()
	}
	return nil
}

func (fs *FirstPersonScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)

	if !fs.cursor.captured {
		fs.pause.UI.Draw(screen)
	}
}

func (fs *FirstPersonScene) tick(_ *ecs.ECS) {
	fs.session.Tick(fs.input, 1/float64(ebiten.TPS()))
}

func (fs *FirstPersonScene) configure() {
	world := donburi.NewWorld()
	space := factory.CreateSpace()

	if _, err := factory.CreateArena(world, space, fs.arena); err != nil {
		log.Error().Str("subsystem", "arena").Err(err).Msg("arena setup failed")
		panic(err)
	}

	fs.input = NewHostInput()
	fs.cursor = &cursor{}
	fs.session = systems.MustNewSession(world, space,
		systems.WithCursor(fs.cursor),
		systems.WithSeed(time.Now().UnixNano()),
	)

	fs.ecs = ecs.NewECS(world)
	fs.ecs.AddSystem(fs.tick)
	fs.ecs.AddRenderer(render.LayerWorld, render.DrawWorld)
	fs.ecs.AddRenderer(render.LayerHUD, render.DrawHUD)

	fs.pause = ui.NewPauseUI(
		components.Player.Get(fs.session.Player),
		func() { fs.resume = true },
		func() { fs.quit = true },
	)
}
