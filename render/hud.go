package render

import (
	"fmt"

	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/fonts"
	"github.com/automoto/fps01/shared/gamemath"
	"github.com/automoto/fps01/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudPanelW     = 220
	hudPanelH     = 86
	hudLineHeight = 16
)

// DrawHUD draws the crosshair and the movement readout.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	p := components.Player.Get(player)

	b := screen.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2
	if p.EnableMouseLook {
		s := float32(cfg.HUD.CrosshairSize)
		vector.StrokeLine(screen, cx-s, cy, cx+s, cy, 1, cfg.HUD.TextColor, false)
		vector.StrokeLine(screen, cx, cy-s, cx, cy+s, 1, cfg.HUD.TextColor, false)
	}

	vector.DrawFilledRect(screen, hudMargin, hudMargin, hudPanelW, hudPanelH, cfg.HUD.PanelColor, false)

	face := fonts.HUDSmall.Get()
	lines := []string{
		fmt.Sprintf("speed %.2f / %.1f", gamemath.HorizontalSpeed(p.Velocity), p.TargetSpeed),
		fmt.Sprintf("vertical %+.2f", p.Velocity.Y()),
		fmt.Sprintf("grounded %t  %s", p.Grounded, p.Mode),
		fmt.Sprintf("yaw %.1f  pitch %.1f", p.Look.Yaw, p.Look.Pitch),
	}
	if d, ok := components.Diagnostics.First(e.World); ok {
		diag := components.Diagnostics.Get(d)
		lines = append(lines, fmt.Sprintf("contacts %d  spawned %d", diag.TotalContacts, diag.TotalSpawned))
	}
	for i, l := range lines {
		text.Draw(screen, l, face, hudMargin*2, hudMargin+hudLineHeight*(i+1), cfg.HUD.TextColor)
	}

	if cfg.Debug.Enabled {
		drawDebug(e, screen)
	}
}

func drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	d, ok := components.Diagnostics.First(e.World)
	if !ok {
		return
	}
	diag := components.Diagnostics.Get(d)
	sync := diag.LastSync
	msg := fmt.Sprintf("tick %d  sync %d/%d/%d  fallen %d  tps %.0f",
		diag.Tick, sync.Synced, sync.Skipped, sync.Stale, diag.Fallen, ebiten.ActualTPS())
	text.Draw(screen, msg, fonts.Mono.Get(), hudMargin*2, screen.Bounds().Dy()-hudMargin, cfg.HUD.TextColor)
}
