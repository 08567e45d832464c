package factory

import (
	"github.com/automoto/bastion/archetypes"
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateSingletons adds the clock, command buffer and statistics entities
// every battle world needs.
func CreateSingletons(ecs *ecs.ECS) {
	CreateClock(ecs)
	CreateCommands(ecs)
	CreateStats(ecs)
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, &components.ClockData{})
	return clock
}

func CreateCommands(ecs *ecs.ECS) *donburi.Entry {
	cmds := archetypes.Commands.Spawn(ecs)
	components.Commands.Set(cmds, &components.CommandsData{})
	return cmds
}

func CreateStats(ecs *ecs.ECS) *donburi.Entry {
	stats := archetypes.Stats.Spawn(ecs)
	components.Stats.Set(stats, &components.StatsData{})
	return stats
}

// CreateCamera centers a top-down camera on the ground-plane point (x, z).
func CreateCamera(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: dmath.NewVec2(x, z),
		Zoom:     config.Camera.Zoom,
	})
	return camera
}
