package terminal

import (
	"classic-snake/game"

	"github.com/gdamore/tcell/v2"
)

// Board origin in terminal coordinates, inside the border.
const (
	boardLeft = 1
	boardTop  = hudRows + 1
)

// cellOrigin maps a grid cell to the left terminal column of its pair.
func cellOrigin(x, y int) (col, row int) {
	return boardLeft + 2*x, boardTop + y
}

func draw(s tcell.Screen, snap game.Snapshot) {
	s.Clear()

	drawText(s, 0, 0, textStyle, snap.StatusLine())
	drawBorder(s, snap.Grid.Width, snap.Grid.Height)

	if snap.HasFood {
		drawCell(s, snap, snap.Food.X, snap.Food.Y, '●', foodStyle)
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		p := snap.Body[i]
		if i == 0 {
			drawCell(s, snap, p.X, p.Y, '█', headStyle)
			continue
		}
		drawCell(s, snap, p.X, p.Y, '▓', bodyStyle)
	}

	if title, hint := snap.Banner(); title != "" {
		_, row := cellOrigin(0, snap.Grid.Height/2)
		width := 2*snap.Grid.Width + 2
		drawCentered(s, width, row-1, bannerStyle, " "+title+" ")
		drawCentered(s, width, row+1, textStyle, hint)
	}
}

func drawCell(s tcell.Screen, snap game.Snapshot, x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= snap.Grid.Width || y >= snap.Grid.Height {
		return
	}
	col, row := cellOrigin(x, y)
	s.SetContent(col, row, r, nil, style)
	s.SetContent(col+1, row, r, nil, style)
}

func drawBorder(s tcell.Screen, w, h int) {
	right := boardLeft + 2*w
	bottom := boardTop + h
	for col := boardLeft; col < right; col++ {
		s.SetContent(col, boardTop-1, '─', nil, borderStyle)
		s.SetContent(col, bottom, '─', nil, borderStyle)
	}
	for row := boardTop; row < bottom; row++ {
		s.SetContent(boardLeft-1, row, '│', nil, borderStyle)
		s.SetContent(right, row, '│', nil, borderStyle)
	}
	s.SetContent(boardLeft-1, boardTop-1, '┌', nil, borderStyle)
	s.SetContent(right, boardTop-1, '┐', nil, borderStyle)
	s.SetContent(boardLeft-1, bottom, '└', nil, borderStyle)
	s.SetContent(right, bottom, '┘', nil, borderStyle)
}

func drawText(s tcell.Screen, col, row int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(col, row, r, nil, style)
		col++
	}
}

func drawCentered(s tcell.Screen, width, row int, style tcell.Style, text string) {
	col := (width - len([]rune(text))) / 2
	if col < 0 {
		col = 0
	}
	drawText(s, col, row, style, text)
}
