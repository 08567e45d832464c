package components

import "github.com/yohamta/donburi"

type ParentData struct {
	Entity donburi.Entity
}

type ChildrenData struct {
	Entities []donburi.Entity
}

// Remove drops e from the child list, keeping the order of the rest.
func (c *ChildrenData) Remove(e donburi.Entity) {
	for i, child := range c.Entities {
		if child == e {
			c.Entities = append(c.Entities[:i], c.Entities[i+1:]...)
			return
		}
	}
}

var Parent = donburi.NewComponentType[ParentData]()
var Children = donburi.NewComponentType[ChildrenData]()
