package input

import (
	cfg "github.com/automoto/bastion/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents a single key or button binding for an action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings
type Config struct {
	Bindings map[cfg.ActionID]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Controls is the global input configuration
var Controls Config

func init() {
	Controls = Config{
		AnalogDeadzone: 0.25,
		Bindings: map[cfg.ActionID]Binding{
			cfg.ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			cfg.ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyR},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			cfg.ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			cfg.ActionToggleHitRadius: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			cfg.ActionToggleAim: {
				Keys: []ebiten.Key{ebiten.KeyV},
			},
			cfg.ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			cfg.ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			cfg.ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
		},
	}
}
