package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// TowerConfig contains the default values for newly created towers
type TowerConfig struct {
	FireInterval float64    // Seconds between shots
	MuzzleOffset mgl64.Vec3 // Local offset from the tower position to the spawn point
	Range        float64    // Acquisition radius (0 = every target is a candidate)
	Height       float64    // Y coordinate of the tower origin when placed from a level
	Radius       float64    // Draw radius in world units
	Color        color.RGBA
}

// ProjectileConfig contains projectile defaults
type ProjectileConfig struct {
	Speed             float64    // World units per second
	Lifetime          float64    // Seconds before the projectile expires
	FallbackDirection mgl64.Vec3 // Used when the aim vector has no length
	Trail             bool       // Spawn a trail sub-entity owned by each projectile
	TrailOffset       mgl64.Vec3 // Trail position relative to its projectile
	Radius            float64    // Draw radius in world units
	Color             color.RGBA
	TrailColor        color.RGBA
}

// CombatConfig contains collision resolution values
type CombatConfig struct {
	HitRadius         float64 // Distance below which a projectile hits a target
	Damage            float64 // Health removed per hit
	RemoveDeadTargets bool    // Despawn targets once their health reaches zero
}

// TargetConfig contains target defaults
type TargetConfig struct {
	Health      float64
	Height      float64 // Y coordinate of the target when placed from a level
	PatrolSpeed float64 // World units per second along a patrol path
	Radius      float64 // Draw radius in world units
	Color       color.RGBA
}

// LevelConfig contains level loading values
type LevelConfig struct {
	PixelsPerUnit float64 // Tiled pixels per world unit on the ground plane
	Default       string  // Level loaded when none is requested
}

// CameraConfig contains the top-down camera values
type CameraConfig struct {
	Zoom            float64 // Screen pixels per world unit
	HeightSkew      float64 // Screen lift per unit of world height, in ground units
	FollowSmoothing float64 // Fraction of the distance to the target covered per frame
	ShakeIntensity  float64 // Pixels of shake when a target is destroyed
	ShakeFrames     int
}

// UIConfig contains HUD values
type UIConfig struct {
	GroundSize       float64 // Side of the drawn ground square in world units
	GroundColor      color.RGBA
	BackgroundColor  color.RGBA
	HealthBarWidth   float64
	HealthBarHeight  float64
	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	HitRadiusColor   color.RGBA
	FlashColor       color.RGBA
	HitFlashFrames   int
	TextColor        color.RGBA
	FontSize         float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Verbose        bool // Log guarded no-ops and level warnings
	ShowHitRadius  bool // Draw the collision radius around targets
	ShowAimVectors bool // Draw a line from each projectile along its direction
}

// Config holds general game configuration
type Config struct {
	Width   int
	Height  int
	TPS     int
	Title   string
	AppName string // Directory name for saved records
}

// Global configuration instances
var C *Config
var Tower TowerConfig
var Projectile ProjectileConfig
var Combat CombatConfig
var Target TargetConfig
var Level LevelConfig
var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue = color.RGBA{R: 171, G: 214, B: 235, A: 255}
	Grass     = color.RGBA{R: 77, G: 128, B: 77, A: 255}
	Night     = color.RGBA{R: 15, G: 20, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:   960,
		Height:  720,
		TPS:     60,
		Title:   "Bastion",
		AppName: "bastion",
	}

	Tower = TowerConfig{
		FireInterval: 1.0,
		MuzzleOffset: mgl64.Vec3{0, 0.5, 0},
		Range:        0,
		Height:       0.25,
		Radius:       0.25,
		Color:        LightBlue,
	}

	Projectile = ProjectileConfig{
		Speed:             4.0,
		Lifetime:          2.0,
		FallbackDirection: mgl64.Vec3{0, 0, -1}, // engine forward axis
		Trail:             true,
		TrailOffset:       mgl64.Vec3{0, 0, 0},
		Radius:            0.06,
		Color:             Yellow,
		TrailColor:        Orange,
	}

	Combat = CombatConfig{
		HitRadius:         0.2,
		Damage:            1.0,
		RemoveDeadTargets: true,
	}

	Target = TargetConfig{
		Health:      3.0,
		Height:      0.4,
		PatrolSpeed: 1.0,
		Radius:      0.2,
		Color:       Red,
	}

	Level = LevelConfig{
		PixelsPerUnit: 32,
		Default:       "meadow",
	}

	Camera = CameraConfig{
		Zoom:            44,
		HeightSkew:      0.5,
		FollowSmoothing: 0.05,
		ShakeIntensity:  4,
		ShakeFrames:     12,
	}

	UI = UIConfig{
		GroundSize:       15,
		GroundColor:      Grass,
		BackgroundColor:  Night,
		HealthBarWidth:   0.5,
		HealthBarHeight:  0.08,
		HealthBarBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthBarFgColor: color.RGBA{R: 40, G: 220, B: 40, A: 255},
		HitRadiusColor:   color.RGBA{R: 255, G: 255, B: 255, A: 90},
		FlashColor:       White,
		HitFlashFrames:   6,
		TextColor:        White,
		FontSize:         14,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Verbose:        false,
		ShowHitRadius:  false,
		ShowAimVectors: false,
	}
}
