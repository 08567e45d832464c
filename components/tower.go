package components

import (
	"github.com/automoto/bastion/timer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type TowerData struct {
	FireTimer    timer.Timer // Repeating, Duration is the fire interval
	MuzzleOffset mgl64.Vec3  // Added to the tower position to get the spawn point

	ProjectileSpeed    float64
	ProjectileLifetime float64

	// Range limits acquisition to targets closer than this to the muzzle.
	// Zero means every target is a candidate.
	Range float64

	ShotsFired int
}

// Muzzle returns the point projectiles are spawned at for a tower at position.
func (t *TowerData) Muzzle(position mgl64.Vec3) mgl64.Vec3 {
	return position.Add(t.MuzzleOffset)
}

var Tower = donburi.NewComponentType[TowerData]()
