package factory

import (
	"github.com/automoto/bastion/archetypes"
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/automoto/bastion/gamemath"
	"github.com/automoto/bastion/systems/hierarchy"
	"github.com/automoto/bastion/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile exactly at s.Position. When trails are
// enabled the projectile owns a trail entity that is removed with it.
func CreateProjectile(ecs *ecs.ECS, s components.ProjectileSpawn) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	components.Transform.Set(p, &components.TransformData{Position: s.Position})
	components.Projectile.Set(p, &components.ProjectileData{
		Direction: gamemath.NormalizeOr(s.Direction, config.Projectile.FallbackDirection),
		Speed:     s.Speed,
	})
	components.Lifetime.Set(p, &components.LifetimeData{
		Timer: timer.New(s.Lifetime, timer.Once),
	})

	if config.Projectile.Trail {
		CreateTrail(ecs, p)
	}

	return p
}

// CreateTrail attaches a trail entity to owner at the configured offset.
func CreateTrail(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	trail := archetypes.Trail.Spawn(ecs)

	offset := config.Projectile.TrailOffset
	ownerPos := components.Transform.Get(owner).Position
	components.Transform.Set(trail, &components.TransformData{Position: ownerPos.Add(offset)})
	components.Attachment.Set(trail, &components.AttachmentData{Offset: offset})
	hierarchy.Attach(owner, trail)

	return trail
}
