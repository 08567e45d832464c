package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // Ground-plane point (X, Z) at the screen center
	Zoom     float64   // Screen pixels per world unit
	Offset   math.Vec2 // Screen-space shake offset in pixels
}

var Camera = donburi.NewComponentType[CameraData]()
