package systems

import (
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/automoto/bastion/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectileMotion moves every projectile along its direction. The
// direction is re-normalized each tick and positions are never bounded.
func UpdateProjectileMotion(ecs *ecs.ECS) {
	dt := delta(ecs.World)

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		t := components.Transform.Get(e)
		t.Position = gamemath.Advance(t.Position, p.Direction, p.Speed, dt, config.Projectile.FallbackDirection)
	})
}
