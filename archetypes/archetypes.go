package archetypes

import (
	"github.com/automoto/bastion/components"
	cfg "github.com/automoto/bastion/config"
	"github.com/automoto/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Tower = newArchetype(
		tags.Tower,
		components.Tower,
		components.Transform,
	)
	Target = newArchetype(
		tags.Target,
		components.Transform,
		components.Health,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Lifetime,
	)
	Trail = newArchetype(
		tags.Trail,
		components.Transform,
		components.Parent,
		components.Attachment,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Commands = newArchetype(
		components.Commands,
	)
	Stats = newArchetype(
		components.Stats,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
