package ui

import (
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyBindings maps raylib key codes to game inputs.
var keyBindings = map[int32]types.Input{
	rl.KeyUp:     types.MoveUp,
	rl.KeyW:      types.MoveUp,
	rl.KeyDown:   types.MoveDown,
	rl.KeyS:      types.MoveDown,
	rl.KeyLeft:   types.MoveLeft,
	rl.KeyA:      types.MoveLeft,
	rl.KeyRight:  types.MoveRight,
	rl.KeyD:      types.MoveRight,
	rl.KeyR:      types.Restart,
	rl.KeyEscape: types.Quit,
	rl.KeyQ:      types.Quit,
	rl.KeyF12:    types.Screenshot,
	rl.KeyP:      types.Screenshot,
}

// TranslateKey returns the input bound to a raylib key code.
func TranslateKey(key int32) (types.Input, bool) {
	in, ok := keyBindings[key]
	return in, ok
}

// pollKeys drains raylib's key queue in press order.
func pollKeys() []types.Input {
	var inputs []types.Input
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if in, ok := TranslateKey(key); ok {
			inputs = append(inputs, in)
		}
	}
	if rl.WindowShouldClose() {
		inputs = append(inputs, types.Quit)
	}
	return inputs
}
