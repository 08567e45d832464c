// Package input turns keyboard and gamepad state into logical actions.
package input

import (
	"github.com/automoto/bastion/components"
	cfg "github.com/automoto/bastion/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll swaps the input buffers and reads every bound key, gamepad
// button and the left stick into input.Current. The game calls it once per
// frame before the scene updates.
func Poll(input *components.InputData) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Controls.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	up, down := analogVertical(gamepadIDs)
	if up {
		input.Current[cfg.ActionMenuUp] = true
	}
	if down {
		input.Current[cfg.ActionMenuDown] = true
	}
}

// analogVertical reads the left stick of every gamepad against the deadzone
func analogVertical(gamepads []ebiten.GamepadID) (up, down bool) {
	deadzone := Controls.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if vertical < -deadzone {
			up = true
		}
		if vertical > deadzone {
			down = true
		}
	}

	return
}
