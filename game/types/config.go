package types

import (
	"time"

	"github.com/pkg/errors"
)

// Config holds the startup settings. It is never changed while a game runs.
type Config struct {
	Cols     int
	Rows     int
	CellSize int    // Pixels per cell, only the window and image frontends use it
	TickRate int    // Ticks per second
	Seed     uint64 // 0 picks a seed from the clock
}

// DefaultConfig returns the published configuration: a 30x20 grid of
// 20px cells at 10 ticks per second.
func DefaultConfig() Config {
	return Config{
		Cols:     DefaultCols,
		Rows:     DefaultRows,
		CellSize: DefaultCellSize,
		TickRate: DefaultTickRate,
	}
}

// Validate checks that the settings describe a playable board.
func (c Config) Validate() error {
	if c.Cols < 2 || c.Rows < 1 {
		return errors.Errorf("grid must be at least 2x1 cells, got %dx%d", c.Cols, c.Rows)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return errors.Errorf("tick rate must be in (0, 1000], got %d", c.TickRate)
	}
	return nil
}

// Grid returns the grid described by the config.
func (c Config) Grid() Grid {
	return Grid{Width: c.Cols, Height: c.Rows}
}

// TickInterval is the time between two snake moves.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
