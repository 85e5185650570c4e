package host

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.2

var keyBindings = map[string][]ebiten.Key{
	"move_left":           {ebiten.KeyA, ebiten.KeyArrowLeft},
	"move_right":          {ebiten.KeyD, ebiten.KeyArrowRight},
	"jump":                {ebiten.KeySpace},
	"reset_level":         {ebiten.KeyR},
	"return_to_main_menu": {ebiten.KeyEscape},
}

var gamepadBindings = map[string]ebiten.StandardGamepadButton{
	"jump":                ebiten.StandardGamepadButtonRightBottom,
	"reset_level":         ebiten.StandardGamepadButtonCenterRight,
	"return_to_main_menu": ebiten.StandardGamepadButtonCenterLeft,
}

// Input maps named actions onto keyboard and the first standard gamepad.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Axis(negative, positive string) float64 {
	axis := 0.0
	if actionPressed(negative) {
		axis -= 1
	}
	if actionPressed(positive) {
		axis += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		stick := ebiten.StandardGamepadAxisValue(gamepads[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(stick) > stickDeadzone {
			axis = stick
		}
	}
	return axis
}

func (i *Input) JustPressed(action string) bool {
	for _, key := range keyBindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	if btn, ok := gamepadBindings[action]; ok {
		for _, id := range ebiten.GamepadIDs() {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func actionPressed(action string) bool {
	for _, key := range keyBindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
