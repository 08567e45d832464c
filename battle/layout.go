package battle

import (
	"github.com/automoto/bastion/assets"
	"github.com/automoto/bastion/config"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultLayout is the built-in battlefield used when no level file is
// requested: one tower in the middle of a 15x15 ground and three targets,
// one of them patrolling a square around the tower.
func DefaultLayout() *assets.Level {
	tower := assets.TowerSpawn{
		Position:           mgl64.Vec3{0, config.Tower.Height, 0},
		FireInterval:       config.Tower.FireInterval,
		MuzzleHeight:       config.Tower.MuzzleOffset.Y(),
		ProjectileSpeed:    config.Projectile.Speed,
		ProjectileLifetime: config.Projectile.Lifetime,
		Range:              config.Tower.Range,
	}

	h := config.Target.Height
	target := func(x, z float64) assets.TargetSpawn {
		return assets.TargetSpawn{
			Position:    mgl64.Vec3{x, h, z},
			Health:      config.Target.Health,
			PatrolSpeed: config.Target.PatrolSpeed,
		}
	}

	walker := target(-4, -4)
	walker.PatrolPath = "square"

	return &assets.Level{
		Name:    "default",
		Width:   config.UI.GroundSize,
		Depth:   config.UI.GroundSize,
		Towers:  []assets.TowerSpawn{tower},
		Targets: []assets.TargetSpawn{target(-3, -4), target(4, 2), walker},
		PatrolPaths: map[string]assets.PatrolPath{
			"square": {
				Name:   "square",
				Points: []mgl64.Vec3{{-4, 0, -4}, {4, 0, -4}, {4, 0, 4}, {-4, 0, 4}},
			},
		},
	}
}

// DefaultLevelName selects DefaultLayout instead of a level file.
const DefaultLevelName = "default"

// LevelSource lists and loads level files.
type LevelSource interface {
	Names() ([]string, error)
	LoadLevel(name string) (*assets.Level, error)
}

// LoadLevel resolves name through levels, or returns DefaultLayout for
// DefaultLevelName.
func LoadLevel(levels LevelSource, name string) (*assets.Level, error) {
	if name == DefaultLevelName {
		return DefaultLayout(), nil
	}
	return levels.LoadLevel(name)
}
