// Package render draws the battle world, its overlays and the HUD.
package render

import (
	"github.com/automoto/bastion/components"
	cfg "github.com/automoto/bastion/config"
	"github.com/automoto/bastion/systems"
	"github.com/automoto/bastion/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	targetQuery     = donburi.NewQuery(filter.Contains(tags.Target, components.Transform))
	projectileQuery = donburi.NewQuery(filter.Contains(tags.Projectile, components.Transform))
	damageableQuery = donburi.NewQuery(filter.Contains(tags.Target, components.Transform, components.Health))
)

// DrawBattle renders the ground plane and every battle entity through the
// camera, back to front: ground, towers, targets, trails, projectiles.
func DrawBattle(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	project := func(e *donburi.Entry) (float32, float32) {
		p := components.Transform.Get(e).Position
		return systems.WorldToScreen(camera, p.X(), p.Y(), p.Z(), width, height)
	}
	scale := func(worldUnits float64) float32 {
		return float32(worldUnits * camera.Zoom)
	}

	half := cfg.UI.GroundSize / 2
	gx, gy := systems.WorldToScreen(camera, -half, 0, -half, width, height)
	vector.FillRect(screen, gx, gy, scale(cfg.UI.GroundSize), scale(cfg.UI.GroundSize), cfg.UI.GroundColor, false)

	tags.Tower.Each(ecs.World, func(e *donburi.Entry) {
		x, y := project(e)
		vector.DrawFilledCircle(screen, x, y, scale(cfg.Tower.Radius), cfg.Tower.Color, true)
	})

	targetQuery.Each(ecs.World, func(e *donburi.Entry) {
		x, y := project(e)
		c := cfg.Target.Color
		if e.HasComponent(components.Flash) {
			c = cfg.UI.FlashColor
		}
		vector.DrawFilledCircle(screen, x, y, scale(cfg.Target.Radius), c, true)
	})

	tags.Trail.Each(ecs.World, func(e *donburi.Entry) {
		x, y := project(e)
		vector.DrawFilledCircle(screen, x, y, scale(cfg.Projectile.Radius)*2, cfg.Projectile.TrailColor, true)
	})

	projectileQuery.Each(ecs.World, func(e *donburi.Entry) {
		x, y := project(e)
		vector.DrawFilledCircle(screen, x, y, scale(cfg.Projectile.Radius), cfg.Projectile.Color, true)
	})
}

// DrawHealthBars draws a bar above every target with health.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	barWidth := float32(cfg.UI.HealthBarWidth * camera.Zoom)
	barHeight := float32(cfg.UI.HealthBarHeight * camera.Zoom)
	lift := float32(cfg.Target.Radius*camera.Zoom) + barHeight*2

	damageableQuery.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Transform.Get(e).Position
		x, y := systems.WorldToScreen(camera, p.X(), p.Y(), p.Z(), width, height)
		drawX := x - barWidth/2
		drawY := y - lift

		hp := components.Health.Get(e)
		vector.FillRect(screen, drawX, drawY, barWidth, barHeight, cfg.UI.HealthBarBgColor, false)
		vector.FillRect(screen, drawX, drawY, barWidth*float32(hp.Fraction()), barHeight, cfg.UI.HealthBarFgColor, false)
	})
}
