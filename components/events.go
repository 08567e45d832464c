package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type ProjectileFired struct {
	Tower  donburi.Entity
	Target donburi.Entity
	Spawn  ProjectileSpawn
}

type TargetHit struct {
	Projectile donburi.Entity
	Target     donburi.Entity
	Damage     float64
	HealthLeft float64
}

type EntityDespawned struct {
	Entity donburi.Entity
	Reason DespawnReason
}

type TargetDestroyed struct {
	Target   donburi.Entity
	Position mgl64.Vec3
}

// Published during the tick and delivered when commands are flushed.
var (
	ProjectileFiredEvent = events.NewEventType[ProjectileFired]()
	TargetHitEvent       = events.NewEventType[TargetHit]()
	EntityDespawnedEvent = events.NewEventType[EntityDespawned]()
	TargetDestroyedEvent = events.NewEventType[TargetDestroyed]()
)
