package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Prop       = donburi.NewTag().SetName("Prop")
	Floor      = donburi.NewTag().SetName("Floor")
	Platform   = donburi.NewTag().SetName("Platform")
	Projectile = donburi.NewTag().SetName("Projectile")
	Light      = donburi.NewTag().SetName("Light")
)
