package systems

import (
	"log"

	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/automoto/bastion/systems/factory"
	"github.com/automoto/bastion/systems/hierarchy"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// FlushCommands applies the spawns and removals queued during the tick, in
// that order, and then delivers every published event. Removing an entity
// that no longer exists does nothing.
func FlushCommands(ecs *ecs.ECS) {
	w := ecs.World
	cmds := commands(w)

	spawns := append([]components.ProjectileSpawn(nil), cmds.Spawns...)
	despawns := append([]components.DespawnRequest(nil), cmds.Despawns...)
	cmds.Clear()

	for _, s := range spawns {
		factory.CreateProjectile(ecs, s)
	}

	for _, d := range despawns {
		if !w.Valid(d.Entity) {
			if config.Debug.Verbose {
				log.Printf("despawn %v (%s): entity already removed", d.Entity, d.Reason)
			}
			continue
		}
		hierarchy.RemoveRecursive(w, d.Entity)
		components.EntityDespawnedEvent.Publish(w, components.EntityDespawned{
			Entity: d.Entity,
			Reason: d.Reason,
		})
	}

	events.ProcessAllEvents(w)
}
