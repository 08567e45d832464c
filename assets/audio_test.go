package assets

import (
	"bytes"
	"testing"

	"github.com/automoto/bastion/config"
)

func TestReadAudioConfiguredSounds(t *testing.T) {
	for id, path := range config.Sound.SFXPaths {
		data, err := ReadAudio(path)
		if err != nil {
			t.Fatalf("sound %d: %v", id, err)
		}
		if !bytes.HasPrefix(data, []byte("RIFF")) {
			t.Errorf("%s is not a RIFF file", path)
		}
	}
}

func TestReadAudioMissing(t *testing.T) {
	if _, err := ReadAudio("audio/missing.wav"); err == nil {
		t.Error("expected an error for a missing sound")
	}
}
