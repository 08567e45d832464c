package render

import (
	"fmt"

	"github.com/automoto/bastion/components"
	cfg "github.com/automoto/bastion/config"
	"github.com/automoto/bastion/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
)

// DrawHUD prints the battle clock and statistics in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()

	lines := make([]string, 0, 6)
	if entry, ok := components.Clock.First(ecs.World); ok {
		clock := components.Clock.Get(entry)
		lines = append(lines, fmt.Sprintf("tick %d  %.1fs", clock.Tick, clock.Elapsed))
	}
	if entry, ok := components.Stats.First(ecs.World); ok {
		s := components.Stats.Get(entry)
		lines = append(lines,
			fmt.Sprintf("shots %d  hits %d  expired %d", s.ShotsFired, s.Hits, s.Expired),
			fmt.Sprintf("damage %.0f  destroyed %d", s.DamageDealt, s.TargetsDestroyed),
		)
	}
	lines = append(lines, fmt.Sprintf("targets %d  projectiles %d",
		targetQuery.Count(ecs.World), projectileQuery.Count(ecs.World)))

	for i, line := range lines {
		y := hudMargin + (i+1)*hudLineHeight
		text.Draw(screen, line, face, hudMargin, y, cfg.UI.TextColor)
	}
}
