package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the world-space position of an entity.
type TransformData struct {
	Position mgl64.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
