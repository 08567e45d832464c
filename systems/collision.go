package systems

import (
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/automoto/bastion/gamemath"
	"github.com/automoto/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	projectileQuery = donburi.NewQuery(filter.Contains(tags.Projectile, components.Transform))
	damageableQuery = donburi.NewQuery(filter.Contains(tags.Target, components.Transform, components.Health))
)

// UpdateCollisions lets each projectile damage the first target it is within
// the hit radius of, then queues the projectile for removal. A projectile
// already queued for removal cannot hit again.
func UpdateCollisions(ecs *ecs.ECS) {
	cmds := commands(ecs.World)
	radius := config.Combat.HitRadius
	damage := config.Combat.Damage

	projectileQuery.Each(ecs.World, func(p *donburi.Entry) {
		if _, pending := cmds.PendingDespawn(p.Entity()); pending {
			return
		}
		pos := components.Transform.Get(p).Position

		var hit *donburi.Entry
		damageableQuery.Each(ecs.World, func(t *donburi.Entry) {
			if hit != nil {
				return
			}
			if gamemath.Distance(pos, components.Transform.Get(t).Position) < radius {
				hit = t
			}
		})
		if hit == nil {
			return
		}

		health := components.Health.Get(hit)
		health.Current -= damage
		cmds.Despawn(p.Entity(), components.DespawnHit)

		components.TargetHitEvent.Publish(ecs.World, components.TargetHit{
			Projectile: p.Entity(),
			Target:     hit.Entity(),
			Damage:     damage,
			HealthLeft: health.Current,
		})
	})
}
