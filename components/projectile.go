package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Direction mgl64.Vec3 // Unit vector fixed at creation
	Speed     float64    // World units per second
}

var Projectile = donburi.NewComponentType[ProjectileData]()
