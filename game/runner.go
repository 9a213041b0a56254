package game

import (
	"time"

	"classic-snake/game/types"

	"github.com/golang/glog"
)

// Frontend supplies input and draws frames. PollInput must return every
// event queued since the previous call, oldest first. Render presents one
// frame and is where the frontend caps the frame rate.
type Frontend interface {
	PollInput() []types.Input
	Render(s Snapshot)
}

// Listener is told about the outcome of every tick that moved the snake.
type Listener interface {
	OnOutcome(o Outcome, s Snapshot)
}

// Capturer stores a snapshot when the player asks for a screenshot.
type Capturer interface {
	Capture(s Snapshot) (string, error)
}

// maxLag is how many tick intervals the loop may fall behind before the
// tick clock is resynchronised instead of catching up.
const maxLag = 3

// Runner sequences input, update and render at a fixed tick rate.
type Runner struct {
	game     *Game
	frontend Frontend
	listener Listener
	capturer Capturer
	interval time.Duration
	now      func() time.Time
	lastTick time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithListener registers l for tick outcomes.
func WithListener(l Listener) RunnerOption {
	return func(r *Runner) { r.listener = l }
}

// WithCapturer enables the screenshot input.
func WithCapturer(c Capturer) RunnerOption {
	return func(r *Runner) { r.capturer = c }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) { r.now = now }
}

// NewRunner drives g through fe at tickRate ticks per second.
func NewRunner(g *Game, fe Frontend, tickRate int, opts ...RunnerOption) *Runner {
	if tickRate <= 0 {
		tickRate = types.DefaultTickRate
	}
	r := &Runner{
		game:     g,
		frontend: fe,
		interval: time.Second / time.Duration(tickRate),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lastTick = r.now()
	return r
}

// Run loops until the player quits.
func (r *Runner) Run() {
	for r.Step() {
	}
}

// Step runs one loop iteration: drain input, at most one tick, one frame.
// It returns false once a quit input was seen; nothing after the quit is
// processed.
func (r *Runner) Step() bool {
	for _, in := range r.frontend.PollInput() {
		if in == types.Screenshot {
			r.capture()
			continue
		}
		if !r.game.HandleInput(in) {
			glog.Infof("quit requested in game %s", r.game.UUID)
			return false
		}
	}

	now := r.now()
	if now.Sub(r.lastTick) >= r.interval {
		r.lastTick = r.lastTick.Add(r.interval)
		if now.Sub(r.lastTick) > maxLag*r.interval {
			r.lastTick = now
		}
		r.tick()
	}

	r.frontend.Render(r.game.Snapshot())
	return true
}

func (r *Runner) tick() {
	outcome := r.game.Tick()
	if outcome == OutcomeIdle || r.listener == nil {
		return
	}
	r.listener.OnOutcome(outcome, r.game.Snapshot())
}

func (r *Runner) capture() {
	if r.capturer == nil {
		return
	}
	path, err := r.capturer.Capture(r.game.Snapshot())
	if err != nil {
		glog.Warningf("screenshot failed: %v", err)
		return
	}
	glog.Infof("screenshot saved to %s", path)
}
