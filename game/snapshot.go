package game

import (
	"fmt"

	"classic-snake/game/types"
)

// Snapshot is a read-only copy of everything a frontend draws.
type Snapshot struct {
	UUID      string
	Grid      types.Grid
	Body      []types.Point // Head first
	Direction types.Direction
	Food      types.Point
	HasFood   bool
	Score     int
	HighScore int
	Mode      Mode
	Collision types.CollisionType
	Ticks     int
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	food, hasFood := g.food.Position()
	return Snapshot{
		UUID:      g.UUID,
		Grid:      g.Grid,
		Body:      g.snake.Body(),
		Direction: g.snake.Direction(),
		Food:      food,
		HasFood:   hasFood,
		Score:     g.score,
		HighScore: g.stateMgr.GetHighScore(),
		Mode:      g.mode,
		Collision: g.collision,
		Ticks:     g.steps,
	}
}

// Head returns the head cell.
func (s Snapshot) Head() types.Point {
	return s.Body[0]
}

// BoardFull reports that no free cell was left for food.
func (s Snapshot) BoardFull() bool {
	return !s.HasFood
}

// StatusLine is the one-line summary frontends print in their HUD.
func (s Snapshot) StatusLine() string {
	return fmt.Sprintf("Score: %d  Best: %d", s.Score, s.HighScore)
}

// Banner returns the overlay title and hint, or empty strings while
// nothing needs to be shown.
func (s Snapshot) Banner() (title, hint string) {
	switch {
	case s.Mode == GameOver:
		return "Game Over", "Press R to Restart | Esc to Quit"
	case s.BoardFull():
		return "Board Full", "Press R to Restart | Esc to Quit"
	default:
		return "", ""
	}
}
