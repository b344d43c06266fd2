package render

import "github.com/yohamta/donburi/ecs"

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)
