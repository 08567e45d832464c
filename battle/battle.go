// Package battle assembles a battle world from a level and runs its systems
// in a fixed order, one tick per Step.
package battle

import (
	"log"

	"github.com/automoto/bastion/assets"
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/automoto/bastion/systems"
	"github.com/automoto/bastion/systems/factory"
	"github.com/automoto/bastion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type Simulation struct {
	ecs   *ecs.ECS
	level *assets.Level
}

// New creates a world holding the towers and targets of level. A nil level
// gives an empty battlefield.
func New(level *assets.Level) *Simulation {
	if level == nil {
		level = &assets.Level{}
	}
	world := donburi.NewWorld()
	s := &Simulation{
		ecs:   ecs.NewECS(world),
		level: level,
	}

	factory.CreateSingletons(s.ecs)
	systems.RegisterStats(world)

	s.ecs.AddSystem(systems.UpdateClock)
	s.ecs.AddSystem(systems.UpdatePatrols)
	s.ecs.AddSystem(systems.UpdateTargeting)
	s.ecs.AddSystem(systems.UpdateProjectileMotion)
	s.ecs.AddSystem(systems.UpdateCollisions)
	s.ecs.AddSystem(systems.UpdateLifetimes)
	s.ecs.AddSystem(systems.UpdateDeaths)
	s.ecs.AddSystem(systems.UpdateAttachments)
	s.ecs.AddSystem(systems.FlushCommands)

	s.populate()
	return s
}

func (s *Simulation) populate() {
	for _, t := range s.level.Towers {
		opts := factory.DefaultTowerOptions()
		opts.FireInterval = t.FireInterval
		opts.MuzzleOffset = mgl64.Vec3{0, t.MuzzleHeight, 0}
		opts.ProjectileSpeed = t.ProjectileSpeed
		opts.ProjectileLifetime = t.ProjectileLifetime
		opts.Range = t.Range
		factory.CreateTower(s.ecs, t.Position, opts)
	}

	for _, t := range s.level.Targets {
		opts := factory.TargetOptions{
			Health:      t.Health,
			Patrol:      s.level.PathFor(t),
			PatrolSpeed: t.PatrolSpeed,
		}
		if t.PatrolPath != "" && opts.Patrol == nil && config.Debug.Verbose {
			log.Printf("level %s: patrol path %q not found", s.level.Name, t.PatrolPath)
		}
		factory.CreateTarget(s.ecs, t.Position, opts)
	}
}

// Step runs one tick covering dt seconds.
func (s *Simulation) Step(dt float64) {
	clock := components.Clock.Get(components.Clock.MustFirst(s.ecs.World))
	clock.Delta = dt
	s.ecs.Update()
}

func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

func (s *Simulation) Level() *assets.Level {
	return s.level
}

// Stats returns a copy of the battle counters.
func (s *Simulation) Stats() components.StatsData {
	return *components.Stats.Get(components.Stats.MustFirst(s.ecs.World))
}

func (s *Simulation) Clock() components.ClockData {
	return *components.Clock.Get(components.Clock.MustFirst(s.ecs.World))
}

// Cleared reports whether every target has been removed.
func (s *Simulation) Cleared() bool {
	return s.Targets() == 0
}

func (s *Simulation) Targets() int {
	return countTag(s.ecs.World, tags.Target)
}

func (s *Simulation) Projectiles() int {
	return countTag(s.ecs.World, tags.Projectile)
}

func countTag(w donburi.World, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w)
}
