package terminal

import (
	"testing"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want types.Input
		ok   bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.MoveUp, true},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.MoveLeft, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), types.Quit, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), types.Quit, true},
		{"f12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), types.Screenshot, true},
		{"rune d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), types.MoveRight, true},
		{"rune j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), types.MoveDown, true},
		{"rune r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), types.Restart, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"resize", tcell.NewEventResize(80, 24), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateEvent(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translateEvent() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(80, 30)
	return s
}

func runeAt(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

func TestDrawBoard(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	snap := game.Snapshot{
		Grid:    types.Grid{Width: 10, Height: 5},
		Body:    []types.Point{{X: 3, Y: 2}, {X: 2, Y: 2}},
		Food:    types.Point{X: 7, Y: 1},
		HasFood: true,
		Score:   4,
	}
	draw(s, snap)

	if got := runeAt(s, 0, 0); got != 'S' {
		t.Errorf("status line starts with %q, want 'S'", got)
	}
	if got := runeAt(s, 0, hudRows); got != '┌' {
		t.Errorf("top-left corner = %q", got)
	}
	col, row := cellOrigin(3, 2)
	if runeAt(s, col, row) != '█' || runeAt(s, col+1, row) != '█' {
		t.Error("head not drawn across both columns")
	}
	col, row = cellOrigin(2, 2)
	if runeAt(s, col, row) != '▓' {
		t.Error("body segment not drawn")
	}
	col, row = cellOrigin(7, 1)
	if runeAt(s, col, row) != '●' {
		t.Error("food not drawn")
	}
}

func TestDrawSkipsOffGridHead(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()

	snap := game.Snapshot{
		Grid: types.Grid{Width: 10, Height: 5},
		Body: []types.Point{{X: -1, Y: 2}, {X: 0, Y: 2}},
		Mode: game.GameOver,
	}
	draw(s, snap)

	// The border column stays intact where the head left the grid.
	if got := runeAt(s, 0, boardTop+2); got != '│' {
		t.Errorf("left border at the exit row = %q, want '│'", got)
	}
	col, row := cellOrigin(0, 2)
	if runeAt(s, col, row) != '▓' {
		t.Error("remaining body not drawn")
	}
}

func TestScreenPollInput(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	scr, err := NewScreen(sim)
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	scr.sleep = func(time.Duration) {}

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	var got []types.Input
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		got = append(got, scr.PollInput()...)
		time.Sleep(time.Millisecond)
	}
	if len(got) != 2 || got[0] != types.MoveUp || got[1] != types.MoveLeft {
		t.Fatalf("PollInput() = %v, want [up left]", got)
	}

	scr.Render(game.Snapshot{Grid: types.Grid{Width: 4, Height: 4}, Body: []types.Point{{X: 1, Y: 1}}})
	scr.Close()
}

func TestCloseStopsBlockedForwarder(t *testing.T) {
	sim := newSimScreen(t)
	scr := &Screen{
		screen:  sim,
		events:  make(chan tcell.Event), // Nobody reads it
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go scr.forward()

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	scr.Close()

	select {
	case <-scr.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("event goroutine still running after Close")
	}
}
