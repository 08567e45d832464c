package factory

import (
	"github.com/automoto/bastion/archetypes"
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TargetOptions describe a hostile target. A Patrol of two or more points
// makes the target walk the path in a loop, starting at its first point.
type TargetOptions struct {
	Health      float64
	Patrol      []mgl64.Vec3
	PatrolSpeed float64
}

func DefaultTargetOptions() TargetOptions {
	return TargetOptions{
		Health:      config.Target.Health,
		PatrolSpeed: config.Target.PatrolSpeed,
	}
}

func CreateTarget(ecs *ecs.ECS, position mgl64.Vec3, opts TargetOptions) *donburi.Entry {
	t := archetypes.Target.Spawn(ecs)

	components.Health.Set(t, &components.HealthData{
		Current: opts.Health,
		Max:     opts.Health,
	})

	if len(opts.Patrol) >= 2 && opts.PatrolSpeed > 0 {
		patrol := &components.PatrolData{
			Points: append([]mgl64.Vec3(nil), opts.Patrol...),
			Speed:  opts.PatrolSpeed,
		}
		patrol.Tween = NewPatrolLeg(patrol)
		donburi.Add(t, components.Patrol, patrol)
		position = patrol.Points[0]
	}

	components.Transform.Set(t, &components.TransformData{Position: position})

	return t
}

// NewPatrolLeg builds the 0..1 tween for the patrol's current leg, timed so
// the target covers the leg at its patrol speed.
func NewPatrolLeg(p *components.PatrolData) *gween.Tween {
	from, to := p.LegEnds()
	duration := from.Sub(to).Len() / p.Speed
	return gween.New(0, 1, float32(duration), ease.InOutQuad)
}
