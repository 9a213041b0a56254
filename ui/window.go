package ui

import (
	"classic-snake/game"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// Window is the raylib frontend.
type Window struct {
	renderer *Renderer
}

// OpenWindow creates a window sized to the grid. Call Close when done.
func OpenWindow(cfg types.Config) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Cols*cfg.CellSize), int32(cfg.Rows*cfg.CellSize), "Snake")
	// Esc is a game input, not raylib's close key
	rl.SetExitKey(0)
	rl.SetTargetFPS(targetFPS)

	return &Window{renderer: NewRenderer(cfg.CellSize)}
}

func (w *Window) PollInput() []types.Input {
	return pollKeys()
}

// Render draws one frame; raylib's EndDrawing waits out the frame budget.
func (w *Window) Render(s game.Snapshot) {
	w.renderer.Draw(s)
}

func (w *Window) Close() {
	rl.CloseWindow()
}
