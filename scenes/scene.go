package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is what the game loop drives each frame.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}
