// Package sound plays the battle's queued sound effects through ebiten's
// audio context.
package sound

import (
	"log"
	"sync"

	cfg "github.com/automoto/bastion/config"
	"github.com/automoto/bastion/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - an ebiten process may only create one audio context
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *Loader
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = NewLoader(globalAudioContext)
	})
}

// PreloadAll decodes all sound effects at startup to avoid lag on first play.
func PreloadAll() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.Preload(path); err != nil {
			log.Printf("preload %s: %v", path, err)
		}
	}
}

// Update plays the sound effects queued since the previous frame. The queue
// is drained even when audio is disabled.
func Update(e *ecs.ECS) {
	pending := systems.DrainSFX(e.World)
	if !cfg.Audio.Enabled || len(pending) == 0 {
		return
	}
	initGlobalAudio()

	for _, id := range pending {
		play(id)
	}
}

func play(soundID cfg.SoundID) {
	if cfg.Audio.SFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.Load(path)
	if err != nil {
		return
	}

	volume := cfg.Audio.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}
