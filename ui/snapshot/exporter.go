// Package snapshot renders game snapshots to PNG files.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"classic-snake/game"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const hudHeight = 28 // Pixels above the board for the status line

// Exporter writes one PNG per Capture call into dir.
type Exporter struct {
	dir      string
	cellSize int
}

func NewExporter(dir string, cellSize int) *Exporter {
	return &Exporter{dir: dir, cellSize: cellSize}
}

// Capture renders s and saves it as <dir>/<uuid>_<tick>.png.
func (e *Exporter) Capture(s game.Snapshot) (string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", errors.Wrapf(err, "create screenshot dir %s", e.dir)
	}
	path := filepath.Join(e.dir, fmt.Sprintf("%s_%06d.png", s.UUID, s.Ticks))
	if err := imaging.Save(Render(s, e.cellSize), path); err != nil {
		return "", errors.Wrapf(err, "save screenshot %s", path)
	}
	return path, nil
}

// Render draws s onto a new image using the window frontend's palette.
func Render(s game.Snapshot, cellSize int) image.Image {
	width := s.Grid.Width * cellSize
	height := s.Grid.Height * cellSize
	dc := gg.NewContext(width, height+hudHeight)

	dc.SetRGB255(18, 18, 18)
	dc.Clear()

	dc.Push()
	dc.Translate(0, hudHeight)
	renderGrid(dc, width, height, cellSize)
	if s.HasFood {
		renderCell(dc, s.Food.X, s.Food.Y, cellSize)
		dc.SetRGB255(220, 80, 80)
		dc.Fill()
	}
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		if p.X < 0 || p.Y < 0 || p.X >= s.Grid.Width || p.Y >= s.Grid.Height {
			continue
		}
		renderCell(dc, p.X, p.Y, cellSize)
		if i == 0 {
			dc.SetRGB255(80, 200, 120)
		} else {
			dc.SetRGB255(60, 160, 100)
		}
		dc.Fill()
	}
	dc.Pop()

	dc.SetRGB255(230, 230, 230)
	dc.DrawString(s.StatusLine(), 10, hudHeight-10)

	if title, hint := s.Banner(); title != "" {
		dc.SetRGBA255(0, 0, 0, 120)
		dc.DrawRectangle(0, hudHeight, float64(width), float64(height))
		dc.Fill()
		dc.SetRGB255(230, 230, 230)
		cx, cy := float64(width)/2, float64(hudHeight+height/2)
		dc.DrawStringAnchored(title, cx, cy-12, 0.5, 0.5)
		dc.DrawStringAnchored(hint, cx, cy+12, 0.5, 0.5)
	}

	return dc.Image()
}

func renderGrid(dc *gg.Context, width, height, cellSize int) {
	dc.SetRGB255(30, 30, 30)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += cellSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += cellSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

func renderCell(dc *gg.Context, x, y, cellSize int) {
	size := float64(cellSize)
	dc.DrawRoundedRectangle(float64(x)*size, float64(y)*size, size, size, size/5)
}
