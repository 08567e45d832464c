package systems

import (
	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/systems/hierarchy"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var attachedQuery = donburi.NewQuery(filter.Contains(
	components.Parent,
	components.Attachment,
	components.Transform,
))

// UpdateAttachments moves attached entities to their owner's position plus
// their offset.
func UpdateAttachments(ecs *ecs.ECS) {
	attachedQuery.Each(ecs.World, func(e *donburi.Entry) {
		parent, ok := hierarchy.ParentOf(e)
		if !ok || !parent.HasComponent(components.Transform) {
			return
		}
		offset := components.Attachment.Get(e).Offset
		components.Transform.Get(e).Position = components.Transform.Get(parent).Position.Add(offset)
	})
}
