package ui

import (
	"classic-snake/game"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	bgColor        = rl.NewColor(18, 18, 18, 255)
	gridColor      = rl.NewColor(30, 30, 30, 255)
	snakeHeadColor = rl.NewColor(80, 200, 120, 255)
	snakeBodyColor = rl.NewColor(60, 160, 100, 255)
	foodColor      = rl.NewColor(220, 80, 80, 255)
	textColor      = rl.NewColor(230, 230, 230, 255)
	overlayColor   = rl.NewColor(0, 0, 0, 120)
)

const (
	fontSize    = 20
	bigFontSize = 36
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cellSize int) *Renderer {
	r := &Renderer{cellSize: int32(cellSize)}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(bgColor)

	r.drawGrid(s)

	if s.HasFood {
		r.drawCell(s.Grid, s.Food.X, s.Food.Y, foodColor)
	}

	// Tail first so the head stays on top
	for i := len(s.Body) - 1; i >= 0; i-- {
		color := snakeBodyColor
		if i == 0 {
			color = snakeHeadColor
		}
		r.drawCell(s.Grid, s.Body[i].X, s.Body[i].Y, color)
	}

	rl.DrawText(s.StatusLine(), 10, 8, fontSize, textColor)

	if title, hint := s.Banner(); title != "" {
		r.drawOverlay(title, hint)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawGrid(s game.Snapshot) {
	width := int32(s.Grid.Width) * r.cellSize
	height := int32(s.Grid.Height) * r.cellSize
	for x := int32(0); x < width; x += r.cellSize {
		rl.DrawLine(x, 0, x, height, gridColor)
	}
	for y := int32(0); y < height; y += r.cellSize {
		rl.DrawLine(0, y, width, y, gridColor)
	}
}

// drawCell skips cells outside the grid, e.g. a head that just hit a wall.
func (r *Renderer) drawCell(grid types.Grid, x, y int, color rl.Color) {
	rect, ok := cellRect(grid, r.cellSize, x, y)
	if !ok {
		return
	}
	rl.DrawRectangleRounded(rect, 0.4, 4, color)
}

// cellRect returns the pixel rectangle of a grid cell.
func cellRect(grid types.Grid, cellSize int32, x, y int) (rl.Rectangle, bool) {
	if !grid.Contains(types.Point{X: x, Y: y}) {
		return rl.Rectangle{}, false
	}
	return rl.NewRectangle(
		float32(int32(x)*cellSize),
		float32(int32(y)*cellSize),
		float32(cellSize),
		float32(cellSize)), true
}

func (r *Renderer) drawOverlay(title, hint string) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, overlayColor)

	titleWidth := rl.MeasureText(title, bigFontSize)
	rl.DrawText(title, (r.screenWidth-titleWidth)/2, r.screenHeight/2-40, bigFontSize, textColor)

	hintWidth := rl.MeasureText(hint, fontSize)
	rl.DrawText(hint, (r.screenWidth-hintWidth)/2, r.screenHeight/2+5, fontSize, textColor)
}
