package systems

import (
	"github.com/automoto/bastion/components"
	cfg "github.com/automoto/bastion/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths queues targets whose health has dropped to zero or below
// when dead targets are configured to be removed.
func UpdateDeaths(ecs *ecs.ECS) {
	if !cfg.Combat.RemoveDeadTargets {
		return
	}
	cmds := commands(ecs.World)

	damageableQuery.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Current > 0 {
			return
		}
		if cmds.Despawn(e.Entity(), components.DespawnDestroyed) {
			components.TargetDestroyedEvent.Publish(ecs.World, components.TargetDestroyed{
				Target:   e.Entity(),
				Position: components.Transform.Get(e).Position,
			})
		}
	})
}
