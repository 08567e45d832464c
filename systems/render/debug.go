package render

import (
	"github.com/automoto/bastion/components"
	cfg "github.com/automoto/bastion/config"
	"github.com/automoto/bastion/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays the collision radius around targets and the travel
// direction of projectiles when enabled in config.Debug.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitRadius && !cfg.Debug.ShowAimVectors {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if cfg.Debug.ShowHitRadius {
		r := float32(cfg.Combat.HitRadius * camera.Zoom)
		damageableQuery.Each(ecs.World, func(e *donburi.Entry) {
			p := components.Transform.Get(e).Position
			x, y := systems.WorldToScreen(camera, p.X(), p.Y(), p.Z(), width, height)
			vector.StrokeCircle(screen, x, y, r, 1, cfg.UI.HitRadiusColor, true)
		})
	}

	if cfg.Debug.ShowAimVectors {
		projectileQuery.Each(ecs.World, func(e *donburi.Entry) {
			p := components.Transform.Get(e).Position
			tip := p.Add(components.Projectile.Get(e).Direction.Mul(0.5))
			x0, y0 := systems.WorldToScreen(camera, p.X(), p.Y(), p.Z(), width, height)
			x1, y1 := systems.WorldToScreen(camera, tip.X(), tip.Y(), tip.Z(), width, height)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.Projectile.Color, true)
		})
	}
}
