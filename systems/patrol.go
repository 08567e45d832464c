package systems

import (
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/gamemath"
	"github.com/automoto/bastion/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrols moves patrolling targets along their current leg and starts
// the next leg when one completes.
func UpdatePatrols(ecs *ecs.ECS) {
	dt := delta(ecs.World)

	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		if patrol.Tween == nil || len(patrol.Points) < 2 {
			return
		}

		progress, done := patrol.Tween.Update(float32(dt))

		// Time left over past the end of a leg is spent on the next one. A tick
		// can cross several short legs but never more than one lap.
		for legs := 0; done && legs < len(patrol.Points); legs++ {
			overflow := patrol.Tween.Overflow
			patrol.Leg = (patrol.Leg + 1) % len(patrol.Points)
			patrol.Tween = factory.NewPatrolLeg(patrol)
			progress, done = patrol.Tween.Update(overflow)
		}

		from, to := patrol.LegEnds()
		components.Transform.Get(e).Position = gamemath.Lerp(from, to, float64(progress))
	})
}
