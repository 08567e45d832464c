package systems

import (
	"github.com/automoto/bastion/components"
	"github.com/yohamta/donburi"
)

// RegisterStats subscribes the statistics counters to the battle events of w.
func RegisterStats(w donburi.World) {
	components.ProjectileFiredEvent.Subscribe(w, func(w donburi.World, _ components.ProjectileFired) {
		if s, ok := stats(w); ok {
			s.ShotsFired++
		}
	})
	components.TargetHitEvent.Subscribe(w, func(w donburi.World, e components.TargetHit) {
		if s, ok := stats(w); ok {
			s.Hits++
			s.DamageDealt += e.Damage
		}
	})
	components.EntityDespawnedEvent.Subscribe(w, func(w donburi.World, e components.EntityDespawned) {
		if e.Reason != components.DespawnExpired {
			return
		}
		if s, ok := stats(w); ok {
			s.Expired++
		}
	})
	components.TargetDestroyedEvent.Subscribe(w, func(w donburi.World, _ components.TargetDestroyed) {
		if s, ok := stats(w); ok {
			s.TargetsDestroyed++
		}
	})
}

func stats(w donburi.World) (*components.StatsData, bool) {
	entry, ok := components.Stats.First(w)
	if !ok {
		return nil, false
	}
	return components.Stats.Get(entry), true
}
