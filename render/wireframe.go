package render

import (
	"image/color"
	"math"

	"github.com/automoto/fps01/components"
	cfg "github.com/automoto/fps01/config"
	"github.com/automoto/fps01/physics"
	"github.com/automoto/fps01/shared/gamemath"
	"github.com/automoto/fps01/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const (
	ringSegments = 20
	lineWidth    = 1.5
	minShade     = 0.35
)

var visualQuery = donburi.NewQuery(filter.Contains(components.Visual, components.Transform))

type frame struct {
	screen   *ebiten.Image
	viewProj mgl64.Mat4
	eye      mgl64.Vec3
	light    mgl64.Vec3
	w, h     float64
}

// DrawWorld draws every visual entity as a wireframe seen from the player.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	cam := components.Transform.Get(player)

	b := screen.Bounds()
	f := frame{
		screen: screen,
		eye:    cam.Position,
		w:      float64(b.Dx()),
		h:      float64(b.Dy()),
		light:  mgl64.Vec3{0, cfg.Light.Height, 0},
	}
	f.viewProj = gamemath.ViewProjection(cam.Position, cam.Rotation, cfg.Camera.FOV, f.w/f.h, cfg.Camera.Near, cfg.Camera.Far)
	if l, ok := components.Light.First(e.World); ok {
		f.light = components.Light.Get(l).Position
	}

	visualQuery.Each(e.World, func(entry *donburi.Entry) {
		if entry.Entity() == player.Entity() {
			return
		}
		v := components.Visual.Get(entry)
		t := components.Transform.Get(entry)
		clr := f.shade(v.Color, t.Position)

		switch v.Shape.Kind {
		case physics.ShapeBall:
			f.drawBall(t.Position, t.Rotation, v.Shape.Radius, clr)
		default:
			f.drawBox(t.Position, t.Rotation, v.Shape.Extents(), clr)
		}
	})
}

// shade dims surfaces the light is behind, as seen from the eye.
func (f *frame) shade(c color.RGBA, center mgl64.Vec3) color.RGBA {
	toLight := f.light.Sub(center)
	toEye := f.eye.Sub(center)
	if toLight.Len() < 1e-9 || toEye.Len() < 1e-9 {
		return c
	}
	facing := toLight.Normalize().Dot(toEye.Normalize())
	k := minShade + (1-minShade)*math.Max(0, (facing+1)/2)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

func (f *frame) line(a, b mgl64.Vec3, clr color.Color) {
	pa, pb, ok := gamemath.ProjectSegment(f.viewProj, a, b, f.w, f.h)
	if !ok {
		return
	}
	vector.StrokeLine(f.screen, float32(pa.X()), float32(pa.Y()), float32(pb.X()), float32(pb.Y()), lineWidth, clr, true)
}

func (f *frame) drawBox(center mgl64.Vec3, q mgl64.Quat, ext mgl64.Vec3, clr color.Color) {
	corners := gamemath.BoxCorners(center, q, ext)
	for _, e := range gamemath.BoxEdges {
		f.line(corners[e[0]], corners[e[1]], clr)
	}
}

// drawBall draws three great circles in the body's frame so spin shows.
func (f *frame) drawBall(center mgl64.Vec3, q mgl64.Quat, r float64, clr color.Color) {
	axes := [3][2]mgl64.Vec3{
		{{1, 0, 0}, {0, 1, 0}},
		{{0, 1, 0}, {0, 0, 1}},
		{{1, 0, 0}, {0, 0, 1}},
	}
	for _, ax := range axes {
		u, v := q.Rotate(ax[0]).Mul(r), q.Rotate(ax[1]).Mul(r)
		prev := center.Add(u)
		for i := 1; i <= ringSegments; i++ {
			a := 2 * math.Pi * float64(i) / ringSegments
			next := center.Add(u.Mul(math.Cos(a))).Add(v.Mul(math.Sin(a)))
			f.line(prev, next, clr)
			prev = next
		}
	}
}
