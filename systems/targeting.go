package systems

import (
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/automoto/bastion/gamemath"
	"github.com/automoto/bastion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var targetQuery = donburi.NewQuery(filter.Contains(tags.Target, components.Transform))

// UpdateTargeting advances every tower's fire timer and, on the tick it
// fills, queues one projectile aimed at the nearest target. The timer is
// reset whether or not a target was found.
func UpdateTargeting(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	cmds := commands(ecs.World)

	tags.Tower.Each(ecs.World, func(e *donburi.Entry) {
		tower := components.Tower.Get(e)
		tower.FireTimer.Tick(dt)
		if !tower.FireTimer.JustFinished() {
			return
		}

		muzzle := tower.Muzzle(components.Transform.Get(e).Position)
		target, ok := NearestTarget(ecs.World, muzzle, tower.Range)
		if !ok {
			return
		}

		aim := components.Transform.Get(target).Position
		spawn := components.ProjectileSpawn{
			Position:  muzzle,
			Direction: gamemath.Direction(muzzle, aim, config.Projectile.FallbackDirection),
			Speed:     tower.ProjectileSpeed,
			Lifetime:  tower.ProjectileLifetime,
		}
		cmds.SpawnProjectile(spawn)
		tower.ShotsFired++

		components.ProjectileFiredEvent.Publish(ecs.World, components.ProjectileFired{
			Tower:  e.Entity(),
			Target: target.Entity(),
			Spawn:  spawn,
		})
	})
}

// NearestTarget returns the target closest to point. Ties keep the first
// target in iteration order. A positive maxRange excludes targets farther
// than it.
func NearestTarget(w donburi.World, point mgl64.Vec3, maxRange float64) (*donburi.Entry, bool) {
	var nearest *donburi.Entry
	best := 0.0

	targetQuery.Each(w, func(e *donburi.Entry) {
		d := gamemath.Distance(point, components.Transform.Get(e).Position)
		if maxRange > 0 && d > maxRange {
			return
		}
		if nearest == nil || d < best {
			nearest = e
			best = d
		}
	})

	return nearest, nearest != nil
}
