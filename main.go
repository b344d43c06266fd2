package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/fps01/assets"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/fonts"
	"github.com/automoto/fps01/headless"
	"github.com/automoto/fps01/scenes"
	"github.com/automoto/fps01/shared/leveldata"
	"github.com/automoto/fps01/systems"
	"github.com/automoto/fps01/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

var CLI struct {
	Debug     bool   `help:"Enable debug logging and the debug overlay."`
	Tuning    string `help:"YAML file overriding player, physics and projectile tuning." type:"existingfile"`
	Arena     string `help:"Embedded arena name or path to a .tmx file. Empty uses the built-in arena." default:"proving"`
	Kinematic bool   `help:"Drive the player as a kinematic body instead of a physics body. Kinematic mode has no jump and passes through static walls and props."`

	Play struct {
	} `cmd:"" default:"1" help:"Open a window and play."`

	Simulate struct {
		Ticks    uint64 `help:"Stop after this many ticks (0 runs the whole script)." default:"0"`
		Script   string `help:"YAML input script; the built-in script is used when empty." type:"existingfile"`
		Realtime bool   `help:"Pace ticks with the wall clock."`
		Seed     int64  `help:"Projectile random seed." default:"1"`
	} `cmd:"" help:"Run the simulation headless from scripted input."`

	Arenas struct {
	} `cmd:"" help:"List the embedded arenas."`
}

type Game struct {
	scene scenes.Scene
}

func (g *Game) Update() error {
	err := g.scene.Update()
	if errors.Is(err, scenes.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("fps01"),
		kong.Description("a first-person physics sandbox"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		cfg.Debug.Enabled = true
		log.Warn().Msg("debug logging enabled")
	}

	if err := configure(); err != nil {
		writeError(err)
	}

	var err error
	switch ctx.Command() {
	case "play":
		err = playCommand()
	case "simulate":
		err = simulateCommand()
	case "arenas":
		err = arenasCommand()
	}
	if err != nil {
		writeError(err)
	}
}

func configure() error {
	if CLI.Tuning != "" {
		if err := cfg.LoadTuning(CLI.Tuning); err != nil {
			return err
		}
		log.Info().Str("file", CLI.Tuning).Msg("tuning loaded")
	}
	if CLI.Kinematic {
		cfg.Player.MovementMode = cfg.MovementKinematic
	}
	return nil
}

// loadArena resolves --arena: a path ending in .tmx is read from disk,
// anything else names an embedded arena.
func loadArena(name string) (*leveldata.Arena, error) {
	if strings.HasSuffix(name, ".tmx") {
		dir, file := filepath.Split(name)
		if dir == "" {
			dir = "."
		}
		return leveldata.Load(os.DirFS(dir), file)
	}
	return assets.LoadArena(name)
}

func playCommand() error {
	arena, err := loadArena(CLI.Arena)
	if err != nil {
		return err
	}

	fonts.LoadDefaults()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetTPS(cfg.C.TickRate)

	return ebiten.RunGame(&Game{scene: scenes.NewFirstPersonScene(arena)})
}

func simulateCommand() error {
	arena, err := loadArena(CLI.Arena)
	if err != nil {
		return err
	}

	w := donburi.NewWorld()
	space := factory.CreateSpace()
	if _, err := factory.CreateArena(w, space, arena); err != nil {
		return err
	}
	session, err := systems.NewSession(w, space, systems.WithSeed(CLI.Simulate.Seed))
	if err != nil {
		return err
	}

	input := headless.DefaultScript()
	if CLI.Simulate.Script != "" {
		if input, err = headless.LoadScript(CLI.Simulate.Script); err != nil {
			return err
		}
	}

	opts := []headless.Option{headless.WithMaxTicks(CLI.Simulate.Ticks)}
	if CLI.Simulate.Realtime {
		opts = append(opts, headless.WithRealtime())
	}
	summary := headless.NewLoop(session, input, cfg.C.TickRate, opts...).Run()

	fmt.Printf("ticks %d (%.2fs)\n", summary.Ticks, summary.Elapsed)
	fmt.Printf("contacts %d, projectiles spawned %d, alive %d\n",
		summary.TotalContacts, summary.TotalSpawned, summary.LiveProjectiles)
	p := summary.PlayerPosition
	fmt.Printf("player at (%.2f, %.2f, %.2f), grounded %t\n", p.X(), p.Y(), p.Z(), summary.Grounded)
	return nil
}

func arenasCommand() error {
	names, err := assets.ArenaNames()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
