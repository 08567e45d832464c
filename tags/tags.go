package tags

import "github.com/yohamta/donburi"

var (
	Tower      = donburi.NewTag().SetName("Tower")
	Target     = donburi.NewTag().SetName("Target")
	Projectile = donburi.NewTag().SetName("Projectile")
	Trail      = donburi.NewTag().SetName("Trail")
)
