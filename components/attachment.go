package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// AttachmentData keeps an entity at a fixed offset from its Parent.
type AttachmentData struct {
	Offset mgl64.Vec3
}

var Attachment = donburi.NewComponentType[AttachmentData]()
