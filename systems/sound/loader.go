package sound

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/automoto/bastion/assets"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Loader decodes embedded sound effects once and hands out players for them
type Loader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewLoader creates a new loader with the given context
func NewLoader(ctx *audio.Context) *Loader {
	return &Loader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// Preload decodes a sound effect and caches it without creating a player.
func (l *Loader) Preload(path string) error {
	_, err := l.decoded(path)
	return err
}

// Load returns a new player for a cached sound effect, decoding it on
// first use.
func (l *Loader) Load(path string) (*audio.Player, error) {
	decoded, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

func (l *Loader) decoded(path string) ([]byte, error) {
	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".wav" {
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	data, err := assets.ReadAudio(path)
	if err != nil {
		return nil, err
	}

	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return decoded, nil
}
