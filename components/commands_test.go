package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestDespawnOncePerEntity(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Create(Transform)

	var c CommandsData
	if !c.Despawn(e, DespawnExpired) {
		t.Fatal("first Despawn returned false")
	}
	if c.Despawn(e, DespawnExpired) {
		t.Error("second Despawn returned true")
	}
	if len(c.Despawns) != 1 {
		t.Errorf("queued %d despawns, want 1", len(c.Despawns))
	}
}

func TestDespawnReasonPriority(t *testing.T) {
	w := donburi.NewWorld()

	tests := []struct {
		name  string
		first DespawnReason
		then  DespawnReason
		want  DespawnReason
	}{
		{"hit then expired", DespawnHit, DespawnExpired, DespawnHit},
		{"expired then hit", DespawnExpired, DespawnHit, DespawnHit},
		{"requested then destroyed", DespawnRequested, DespawnDestroyed, DespawnDestroyed},
		{"destroyed then requested", DespawnDestroyed, DespawnRequested, DespawnDestroyed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := w.Create(Transform)
			var c CommandsData
			c.Despawn(e, tt.first)
			c.Despawn(e, tt.then)

			got, ok := c.PendingDespawn(e)
			if !ok {
				t.Fatal("entity not pending")
			}
			if got != tt.want {
				t.Errorf("reason = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandsClear(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Create(Transform)

	var c CommandsData
	c.SpawnProjectile(ProjectileSpawn{Speed: 1})
	c.Despawn(e, DespawnHit)
	c.Clear()

	if len(c.Spawns) != 0 || len(c.Despawns) != 0 {
		t.Fatalf("queues not empty after Clear: %d spawns, %d despawns", len(c.Spawns), len(c.Despawns))
	}
	if _, ok := c.PendingDespawn(e); ok {
		t.Error("entity still pending after Clear")
	}
	if !c.Despawn(e, DespawnHit) {
		t.Error("Despawn after Clear returned false")
	}
}

func TestPendingDespawnOnEmptyBuffer(t *testing.T) {
	var c CommandsData
	if _, ok := c.PendingDespawn(donburi.Entity(1)); ok {
		t.Error("empty buffer reported a pending entity")
	}
}

func TestHealthFraction(t *testing.T) {
	tests := []struct {
		h    HealthData
		want float64
	}{
		{HealthData{Current: 3, Max: 3}, 1},
		{HealthData{Current: 1.5, Max: 3}, 0.5},
		{HealthData{Current: -1, Max: 3}, 0},
		{HealthData{Current: 5, Max: 3}, 1},
		{HealthData{Current: 2, Max: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.h.Fraction(); got != tt.want {
			t.Errorf("%+v.Fraction() = %v, want %v", tt.h, got, tt.want)
		}
	}
}
