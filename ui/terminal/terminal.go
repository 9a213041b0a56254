// Package terminal is a tcell frontend that draws the board with two
// terminal columns per cell.
package terminal

import (
	"time"

	"classic-snake/game"
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	eventBuffer   = 256
	hudRows       = 1 // Status line above the board
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Screen is the terminal frontend.
type Screen struct {
	screen    tcell.Screen
	events    chan tcell.Event
	done      chan struct{} // Closed by Close
	stopped   chan struct{} // Closed when forward returns
	lastFrame time.Time
	sleep     func(time.Duration)
}

// Open initialises the terminal. Call Close to restore it.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	return NewScreen(s)
}

// NewScreen wraps an uninitialised tcell screen.
func NewScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	s.HideCursor()

	t := &Screen{
		screen: s,
		events:  make(chan tcell.Event, eventBuffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		sleep:   time.Sleep,
	}

	// PollEvent blocks, so it runs on its own goroutine and only forwards
	// events; the game loop drains the channel.
	go t.forward()
	return t, nil
}

func (t *Screen) forward() {
	defer close(t.stopped)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// PollInput drains every queued terminal event without blocking.
func (t *Screen) PollInput() []types.Input {
	var inputs []types.Input
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(inputs, types.Quit)
			}
			if in, ok := translateEvent(ev); ok {
				inputs = append(inputs, in)
			}
		default:
			return inputs
		}
	}
}

// Render draws the snapshot then sleeps out the rest of the frame.
func (t *Screen) Render(snap game.Snapshot) {
	draw(t.screen, snap)
	t.screen.Show()

	if wait := frameInterval - time.Since(t.lastFrame); wait > 0 {
		t.sleep(wait)
	}
	t.lastFrame = time.Now()
}

// Close restores the terminal and stops the event goroutine, even when
// nobody drains the queue any more.
func (t *Screen) Close() {
	close(t.done)
	t.screen.Fini()
}

func translateEvent(ev tcell.Event) (types.Input, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return 0, false
	}
	switch key.Key() {
	case tcell.KeyUp:
		return types.MoveUp, true
	case tcell.KeyDown:
		return types.MoveDown, true
	case tcell.KeyLeft:
		return types.MoveLeft, true
	case tcell.KeyRight:
		return types.MoveRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.Quit, true
	case tcell.KeyF12:
		return types.Screenshot, true
	case tcell.KeyRune:
		return translateRune(key.Rune())
	}
	return 0, false
}

func translateRune(r rune) (types.Input, bool) {
	switch r {
	case 'w', 'W', 'k':
		return types.MoveUp, true
	case 's', 'S', 'j':
		return types.MoveDown, true
	case 'a', 'A', 'h':
		return types.MoveLeft, true
	case 'd', 'D', 'l':
		return types.MoveRight, true
	case 'r', 'R':
		return types.Restart, true
	case 'q', 'Q':
		return types.Quit, true
	case 'p', 'P':
		return types.Screenshot, true
	}
	return 0, false
}
