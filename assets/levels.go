package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/bastion/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// Object group names read from a level.
const (
	GroupTowers      = "Towers"
	GroupTargets     = "Targets"
	GroupPatrolPaths = "PatrolPaths"
)

type Level struct {
	Name        string
	Width       float64 // Ground extent along X in world units
	Depth       float64 // Ground extent along Z in world units
	Towers      []TowerSpawn
	Targets     []TargetSpawn
	PatrolPaths map[string]PatrolPath
}

type TowerSpawn struct {
	Position           mgl64.Vec3
	FireInterval       float64
	MuzzleHeight       float64
	ProjectileSpeed    float64
	ProjectileLifetime float64
	Range              float64
}

type TargetSpawn struct {
	Position    mgl64.Vec3
	Health      float64
	PatrolPath  string
	PatrolSpeed float64
}

type PatrolPath struct {
	Name   string
	Points []mgl64.Vec3 // Converted polyline points in world coordinates
}

// LevelLoader reads Tiled maps from a file system. Object coordinates are
// mapped onto the ground plane, pixel x to world X and pixel y to world Z,
// with the map center at the origin.
type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads the levels embedded in the binary.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// Names lists the levels available to the loader, sorted.
func (l *LevelLoader) Names() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (l *LevelLoader) MustLoadLevel(name string) *Level {
	level, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses levels/<name>.tmx.
func (l *LevelLoader) LoadLevel(name string) (*Level, error) {
	levelPath := path.Join("levels", name+".tmx")
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}

	ppu := config.Level.PixelsPerUnit
	if ppu <= 0 {
		return nil, fmt.Errorf("load level %s: pixels per unit must be positive, got %v", name, ppu)
	}
	pixelW := float64(levelMap.Width * levelMap.TileWidth)
	pixelH := float64(levelMap.Height * levelMap.TileHeight)
	toWorld := func(x, y, height float64) mgl64.Vec3 {
		return mgl64.Vec3{(x - pixelW/2) / ppu, height, (y - pixelH/2) / ppu}
	}

	level := &Level{
		Name:        name,
		Width:       pixelW / ppu,
		Depth:       pixelH / ppu,
		PatrolPaths: make(map[string]PatrolPath),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupTowers:
			for _, o := range og.Objects {
				p := o.Properties
				height := floatProperty(p, "height", config.Tower.Height)
				level.Towers = append(level.Towers, TowerSpawn{
					Position:           toWorld(o.X, o.Y, height),
					FireInterval:       floatProperty(p, "fireInterval", config.Tower.FireInterval),
					MuzzleHeight:       floatProperty(p, "muzzleHeight", config.Tower.MuzzleOffset.Y()),
					ProjectileSpeed:    floatProperty(p, "projectileSpeed", config.Projectile.Speed),
					ProjectileLifetime: floatProperty(p, "projectileLifetime", config.Projectile.Lifetime),
					Range:              floatProperty(p, "range", config.Tower.Range),
				})
			}
		case GroupTargets:
			for _, o := range og.Objects {
				p := o.Properties
				height := floatProperty(p, "height", config.Target.Height)
				level.Targets = append(level.Targets, TargetSpawn{
					Position:    toWorld(o.X, o.Y, height),
					Health:      floatProperty(p, "health", config.Target.Health),
					PatrolPath:  p.GetString("pathName"),
					PatrolSpeed: floatProperty(p, "patrolSpeed", config.Target.PatrolSpeed),
				})
			}
		case GroupPatrolPaths:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]mgl64.Vec3, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = toWorld(o.X+point.X, o.Y+point.Y, 0)
				}
				level.PatrolPaths[o.Name] = PatrolPath{
					Name:   o.Name,
					Points: points,
				}
			}
		}
	}

	return level, nil
}

// PathFor returns the patrol points for s at s's height, or nil when s has
// no path or names a path the level does not define.
func (lvl *Level) PathFor(s TargetSpawn) []mgl64.Vec3 {
	if s.PatrolPath == "" {
		return nil
	}
	p, ok := lvl.PatrolPaths[s.PatrolPath]
	if !ok {
		return nil
	}
	points := make([]mgl64.Vec3, len(p.Points))
	for i, pt := range p.Points {
		points[i] = mgl64.Vec3{pt.X(), s.Position.Y(), pt.Z()}
	}
	return points
}

// floatProperty returns the named property, or def when the object does not
// set it.
func floatProperty(p tiled.Properties, name string, def float64) float64 {
	if len(p.Get(name)) == 0 {
		return def
	}
	return p.GetFloat(name)
}
