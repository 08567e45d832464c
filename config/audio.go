package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFire
	SoundHit
	SoundDestroy
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
	Enabled    bool // Turned off by -mute and in headless runs
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.6,
		Enabled:    true,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundFire:    "audio/fire.wav",
			SoundHit:     "audio/hit.wav",
			SoundDestroy: "audio/destroy.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundFire: 0.5,
		},
	}
}
