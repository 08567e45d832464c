package systems

import (
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterEffects hooks the visual feedback for hits and kills to the
// battle events of w.
func RegisterEffects(ecs *ecs.ECS) {
	components.TargetHitEvent.Subscribe(ecs.World, func(w donburi.World, e components.TargetHit) {
		if !w.Valid(e.Target) {
			return
		}
		TriggerHitFlash(w.Entry(e.Target))
	})
	components.TargetDestroyedEvent.Subscribe(ecs.World, func(w donburi.World, _ components.TargetDestroyed) {
		TriggerScreenShake(ecs, config.Camera.ShakeIntensity, config.Camera.ShakeFrames)
	})
}

// UpdateEffects counts down hit flashes and removes the finished ones
func UpdateEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
		if flash.Duration <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.Flash)
	}
}

// TriggerHitFlash starts a white flash on the entity
func TriggerHitFlash(entry *donburi.Entry) {
	if entry.HasComponent(components.Flash) {
		components.Flash.Get(entry).Duration = config.UI.HitFlashFrames
		return
	}
	donburi.Add(entry, components.Flash, &components.FlashData{Duration: config.UI.HitFlashFrames})
}
