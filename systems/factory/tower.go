package factory

import (
	"github.com/automoto/bastion/archetypes"
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/automoto/bastion/timer"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TowerOptions are the per-tower values a level may override.
type TowerOptions struct {
	FireInterval       float64
	MuzzleOffset       mgl64.Vec3
	ProjectileSpeed    float64
	ProjectileLifetime float64
	Range              float64
}

// DefaultTowerOptions returns the configured tower and projectile defaults.
func DefaultTowerOptions() TowerOptions {
	return TowerOptions{
		FireInterval:       config.Tower.FireInterval,
		MuzzleOffset:       config.Tower.MuzzleOffset,
		ProjectileSpeed:    config.Projectile.Speed,
		ProjectileLifetime: config.Projectile.Lifetime,
		Range:              config.Tower.Range,
	}
}

// CreateTower places a tower at position. Its fire timer starts empty, so the
// first shot comes one full interval after creation.
func CreateTower(ecs *ecs.ECS, position mgl64.Vec3, opts TowerOptions) *donburi.Entry {
	t := archetypes.Tower.Spawn(ecs)

	components.Transform.Set(t, &components.TransformData{Position: position})
	components.Tower.Set(t, &components.TowerData{
		FireTimer:          timer.New(opts.FireInterval, timer.Repeating),
		MuzzleOffset:       opts.MuzzleOffset,
		ProjectileSpeed:    opts.ProjectileSpeed,
		ProjectileLifetime: opts.ProjectileLifetime,
		Range:              opts.Range,
	})

	return t
}
