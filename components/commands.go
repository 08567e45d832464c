package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// DespawnReason says why an entity was removed. Higher values take
// precedence when one entity is despawned twice in the same tick.
type DespawnReason int

const (
	DespawnRequested DespawnReason = iota
	DespawnDestroyed
	DespawnExpired
	DespawnHit
)

func (r DespawnReason) String() string {
	switch r {
	case DespawnRequested:
		return "requested"
	case DespawnDestroyed:
		return "destroyed"
	case DespawnExpired:
		return "expired"
	case DespawnHit:
		return "hit"
	}
	return "unknown"
}

// ProjectileSpawn is a queued projectile creation.
type ProjectileSpawn struct {
	Position  mgl64.Vec3
	Direction mgl64.Vec3
	Speed     float64
	Lifetime  float64
}

type DespawnRequest struct {
	Entity donburi.Entity
	Reason DespawnReason
}

// CommandsData buffers structural changes requested during a tick. They are
// applied together once every system has run.
type CommandsData struct {
	Spawns   []ProjectileSpawn
	Despawns []DespawnRequest

	pending map[donburi.Entity]int
}

func (c *CommandsData) SpawnProjectile(s ProjectileSpawn) {
	c.Spawns = append(c.Spawns, s)
}

// Despawn queues e for removal. It returns false if e is already queued; in
// that case the stored reason is replaced when r has a higher priority.
func (c *CommandsData) Despawn(e donburi.Entity, r DespawnReason) bool {
	if c.pending == nil {
		c.pending = make(map[donburi.Entity]int)
	}
	if i, ok := c.pending[e]; ok {
		if r > c.Despawns[i].Reason {
			c.Despawns[i].Reason = r
		}
		return false
	}
	c.pending[e] = len(c.Despawns)
	c.Despawns = append(c.Despawns, DespawnRequest{Entity: e, Reason: r})
	return true
}

// PendingDespawn reports whether e is queued and with which reason.
func (c *CommandsData) PendingDespawn(e donburi.Entity) (DespawnReason, bool) {
	i, ok := c.pending[e]
	if !ok {
		return 0, false
	}
	return c.Despawns[i].Reason, true
}

// Clear empties both queues.
func (c *CommandsData) Clear() {
	c.Spawns = c.Spawns[:0]
	c.Despawns = c.Despawns[:0]
	clear(c.pending)
}

var Commands = donburi.NewComponentType[CommandsData]()
