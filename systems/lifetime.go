package systems

import (
	"github.com/automoto/bastion/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLifetimes ticks every lifetime and queues the entity for removal on
// the tick its time runs out.
func UpdateLifetimes(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	cmds := commands(ecs.World)

	components.Lifetime.Each(ecs.World, func(e *donburi.Entry) {
		lt := components.Lifetime.Get(e)
		lt.Timer.Tick(dt)
		if lt.Timer.JustFinished() {
			cmds.Despawn(e.Entity(), components.DespawnExpired)
		}
	})
}
