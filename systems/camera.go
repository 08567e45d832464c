package systems

import (
	"math"

	"github.com/automoto/bastion/components"
	"github.com/automoto/bastion/config"
	"github.com/automoto/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera eases the camera toward the middle of the towers and targets,
// kept inside the ground square, and applies any screen shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	var sumX, sumZ float64
	n := 0
	center := func(entry *donburi.Entry) {
		p := components.Transform.Get(entry).Position
		sumX += p.X()
		sumZ += p.Z()
		n++
	}
	tags.Tower.Each(e.World, center)
	targetQuery.Each(e.World, center)
	if n == 0 {
		return
	}

	half := config.UI.GroundSize / 2
	targetX := math.Max(-half, math.Min(half, sumX/float64(n)))
	targetZ := math.Max(-half, math.Min(half, sumZ/float64(n)))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetZ - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateScreenShake sets the shake offset for this frame and removes the
// shake once it has run its course
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Offset = dmath.Vec2{}
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Offset = dmath.NewVec2(
		math.Sin(float64(shake.Elapsed)*1.1)*currentIntensity,
		math.Cos(float64(shake.Elapsed)*1.3)*currentIntensity,
	)

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	donburi.Add(cameraEntry, components.ScreenShake, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// WorldToScreen projects a world position onto the screen through the
// top-down camera. Height lifts a point up the screen by HeightSkew.
func WorldToScreen(camera *components.CameraData, x, y, z float64, width, height int) (float32, float32) {
	sx := (x-camera.Position.X)*camera.Zoom + float64(width)/2 + camera.Offset.X
	sy := (z-camera.Position.Y-y*config.Camera.HeightSkew)*camera.Zoom + float64(height)/2 + camera.Offset.Y
	return float32(sx), float32(sy)
}
