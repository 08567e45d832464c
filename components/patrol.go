package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PatrolData walks an entity along Points, one tween per leg, looping back
// to the first point after the last.
type PatrolData struct {
	Points []mgl64.Vec3
	Speed  float64 // World units per second
	Leg    int     // Index of the point the current leg starts from
	Tween  *gween.Tween
}

// LegEnds returns the start and end points of the current leg.
func (p *PatrolData) LegEnds() (mgl64.Vec3, mgl64.Vec3) {
	from := p.Points[p.Leg%len(p.Points)]
	to := p.Points[(p.Leg+1)%len(p.Points)]
	return from, to
}

var Patrol = donburi.NewComponentType[PatrolData]()
