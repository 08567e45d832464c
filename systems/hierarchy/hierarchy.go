// Package hierarchy tracks entity ownership. An owner removed through
// RemoveRecursive takes every entity it owns with it.
package hierarchy

import (
	"github.com/automoto/bastion/components"
	"github.com/yohamta/donburi"
)

// Attach makes child owned by parent, detaching it from any previous owner.
// Attaching an entity to itself or to one of its own descendants is ignored.
func Attach(parent, child *donburi.Entry) {
	if parent.Entity() == child.Entity() || isAncestor(child, parent) {
		return
	}

	if old, ok := ParentOf(child); ok {
		if old.Entity() == parent.Entity() {
			return
		}
		components.Children.Get(old).Remove(child.Entity())
	}

	if child.HasComponent(components.Parent) {
		components.Parent.Get(child).Entity = parent.Entity()
	} else {
		donburi.Add(child, components.Parent, &components.ParentData{Entity: parent.Entity()})
	}

	if !parent.HasComponent(components.Children) {
		donburi.Add(parent, components.Children, &components.ChildrenData{})
	}
	children := components.Children.Get(parent)
	children.Entities = append(children.Entities, child.Entity())
}

// ParentOf returns the live owner of child, if any.
func ParentOf(child *donburi.Entry) (*donburi.Entry, bool) {
	if !child.HasComponent(components.Parent) {
		return nil, false
	}
	w := child.World
	p := components.Parent.Get(child).Entity
	if !w.Valid(p) {
		return nil, false
	}
	return w.Entry(p), true
}

// RemoveRecursive removes e and everything it owns, children first, and
// unlinks e from its owner. It returns how many entities were removed; an
// invalid e removes nothing.
func RemoveRecursive(w donburi.World, e donburi.Entity) int {
	if !w.Valid(e) {
		return 0
	}
	entry := w.Entry(e)

	removed := 0
	if entry.HasComponent(components.Children) {
		owned := append([]donburi.Entity(nil), components.Children.Get(entry).Entities...)
		for _, child := range owned {
			removed += RemoveRecursive(w, child)
		}
	}

	if parent, ok := ParentOf(entry); ok && parent.HasComponent(components.Children) {
		components.Children.Get(parent).Remove(e)
	}

	w.Remove(e)
	return removed + 1
}

func isAncestor(candidate, e *donburi.Entry) bool {
	for p, ok := ParentOf(e); ok; p, ok = ParentOf(p) {
		if p.Entity() == candidate.Entity() {
			return true
		}
	}
	return false
}
