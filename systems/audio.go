package systems

import (
	"github.com/automoto/bastion/components"
	cfg "github.com/automoto/bastion/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterAudio creates the sound queue and fills it from battle events.
func RegisterAudio(e *ecs.ECS) {
	entry := e.World.Entry(e.World.Create(components.Audio))
	components.Audio.Set(entry, &components.AudioData{})

	components.ProjectileFiredEvent.Subscribe(e.World, func(w donburi.World, _ components.ProjectileFired) {
		queueSFX(w, cfg.SoundFire)
	})
	components.TargetHitEvent.Subscribe(e.World, func(w donburi.World, _ components.TargetHit) {
		queueSFX(w, cfg.SoundHit)
	})
	components.TargetDestroyedEvent.Subscribe(e.World, func(w donburi.World, _ components.TargetDestroyed) {
		queueSFX(w, cfg.SoundDestroy)
	})
}

func queueSFX(w donburi.World, id cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, id)
}

// DrainSFX empties the sound queue and returns each queued sound once, in
// the order first queued.
func DrainSFX(w donburi.World) []cfg.SoundID {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audioData := components.Audio.Get(entry)
	pending := audioData.PendingSFX
	audioData.PendingSFX = nil

	seen := make(map[cfg.SoundID]bool, len(pending))
	sounds := make([]cfg.SoundID, 0, len(pending))
	for _, id := range pending {
		if seen[id] {
			continue
		}
		seen[id] = true
		sounds = append(sounds, id)
	}
	return sounds
}
