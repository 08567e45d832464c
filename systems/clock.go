package systems

import (
	"github.com/automoto/bastion/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock accumulates the delta the host wrote for this tick.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Elapsed += clock.Delta
	clock.Tick++
}

// delta returns the seconds elapsed this tick, or zero without a clock.
func delta(w donburi.World) float64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

func commands(w donburi.World) *components.CommandsData {
	return components.Commands.Get(components.Commands.MustFirst(w))
}
