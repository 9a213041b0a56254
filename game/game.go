package game

import (
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Mode is the state of the game's state machine.
type Mode int

const (
	Running Mode = iota
	GameOver
)

func (m Mode) String() string {
	if m == GameOver {
		return "game-over"
	}
	return "running"
}

// Outcome is what a single Tick did.
type Outcome int

const (
	OutcomeIdle      Outcome = iota // Not running, nothing moved
	OutcomeMoved                    // Moved without eating
	OutcomeAte                      // Ate and food was respawned
	OutcomeBoardFull                // Ate the last reachable food, no free cell left
	OutcomeDied                     // Hit a wall or itself
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeBoardFull:
		return "board-full"
	case OutcomeDied:
		return "died"
	default:
		return "idle"
	}
}

// Game owns the snake, the food, the score and the mode. It is mutated
// only by the loop that drives it.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	snake     *entity.Snake
	food      *entity.Food
	score     int
	mode      Mode
	collision types.CollisionType
	steps     int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame starts a running game on grid. rng drives food placement.
func NewGame(grid types.Grid, rng *rand.Rand) *Game {
	g := &Game{
		Grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, rng),
		stateMgr:     manager.NewStateManager(),
	}
	g.Reset()
	return g
}

// Reset discards the current run and starts a fresh one. The session
// high score is kept.
func (g *Game) Reset() {
	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.snake = entity.NewSnake(g.Grid.Center())
	g.food = g.foodMgr.Spawn(g.snake.OccupiedCells())
	g.score = 0
	g.mode = Running
	g.collision = types.NoCollision
	g.steps = 0

	glog.Infof("game %s started on %dx%d grid", g.UUID, g.Grid.Width, g.Grid.Height)
}

// HandleInput applies one input event. It returns false once the player
// asked to quit.
func (g *Game) HandleInput(in types.Input) bool {
	if in == types.Quit {
		return false
	}

	if d, ok := in.Direction(); ok {
		if !g.active() {
			return true
		}
		if !g.snake.SetDirection(d) {
			glog.V(2).Infof("game %s: ignored %v while heading %v", g.UUID, d, g.snake.Direction())
		}
		return true
	}

	// A full board is finished too, so it can be restarted.
	if in == types.Restart && !g.active() {
		g.Reset()
	}
	return true
}

// active reports whether ticks still move the snake: the run is not over
// and there is food left to chase.
func (g *Game) active() bool {
	if g.mode != Running {
		return false
	}
	_, hasFood := g.food.Position()
	return hasFood
}

// Tick advances the game by one step.
func (g *Game) Tick() Outcome {
	if !g.active() {
		return OutcomeIdle
	}

	g.steps++
	g.snake.Advance()
	glog.V(2).Infof("game %s tick %d: head %v", g.UUID, g.steps, g.snake.Head())

	if collision := g.collisionMgr.CheckCollision(g.snake); collision != types.NoCollision {
		g.end(collision)
		return OutcomeDied
	}

	if !g.collisionMgr.IsFoodCollision(g.snake, g.food) {
		return OutcomeMoved
	}

	g.score++
	g.snake.Grow(1)
	g.foodMgr.Respawn(g.food, g.snake.OccupiedCells())
	g.stateMgr.UpdateScore(g.score)
	glog.V(1).Infof("game %s: ate food, score %d", g.UUID, g.score)

	if _, ok := g.food.Position(); !ok {
		g.stateMgr.AddToHistory(g.record(types.NoCollision, true))
		glog.Infof("game %s: board full with score %d after %v", g.UUID, g.score, g.ElapsedTime())
		return OutcomeBoardFull
	}
	return OutcomeAte
}

func (g *Game) end(collision types.CollisionType) {
	g.mode = GameOver
	g.collision = collision
	g.stateMgr.AddToHistory(g.record(collision, false))
	glog.Infof("game %s over: %v collision at %v, score %d after %d ticks (%v)",
		g.UUID, collision, g.snake.Head(), g.score, g.steps, g.ElapsedTime())
}

func (g *Game) record(cause types.CollisionType, cleared bool) manager.GameRecord {
	return manager.GameRecord{
		UUID:      g.UUID,
		StartTime: g.StartTime,
		EndTime:   time.Now(),
		Score:     g.score,
		Ticks:     g.steps,
		Cause:     cause,
		Cleared:   cleared,
	}
}

func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

// ElapsedTime returns how long the current run has lasted.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}
