package components

import (
	"github.com/automoto/bastion/timer"
	"github.com/yohamta/donburi"
)

// LifetimeData removes its entity (and everything it owns) when Timer finishes.
type LifetimeData struct {
	Timer timer.Timer
}

var Lifetime = donburi.NewComponentType[LifetimeData]()
