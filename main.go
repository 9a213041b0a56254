package main

import (
	"flag"
	"time"

	"classic-snake/audio"
	"classic-snake/game"
	"classic-snake/game/types"
	"classic-snake/ui"
	"classic-snake/ui/snapshot"
	"classic-snake/ui/terminal"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// frontend is what the Runner drives plus the surface it must release.
type frontend interface {
	game.Frontend
	Close()
}

func main() {
	cfg := types.DefaultConfig()
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Grid width in cells")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Grid height in cells")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels (window and screenshots)")
	flag.IntVar(&cfg.TickRate, "tps", cfg.TickRate, "Snake moves per second")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = from clock)")
	frontendName := flag.String("frontend", "window", "Frontend: window or terminal")
	sound := flag.Bool("sound", true, "Play sound effects")
	screenshots := flag.String("screenshots", "", "Directory for screenshots (empty disables them)")
	flag.Parse()
	defer glog.Flush()

	if err := cfg.Validate(); err != nil {
		glog.Exitf("invalid configuration: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	glog.Infof("seed %d, %dx%d grid at %d ticks/s", cfg.Seed, cfg.Cols, cfg.Rows, cfg.TickRate)

	fe, err := openFrontend(*frontendName, cfg)
	if err != nil {
		glog.Exitf("frontend: %v", err)
	}
	defer fe.Close()

	g := game.NewGame(cfg.Grid(), rand.New(rand.NewSource(cfg.Seed)))

	player := audio.Silent()
	if *sound {
		if p, err := audio.NewPlayer(); err == nil {
			player = p
		} else {
			glog.Warningf("audio disabled: %v", err)
		}
	}
	defer player.Close()

	opts := []game.RunnerOption{game.WithListener(player)}
	if *screenshots != "" {
		opts = append(opts, game.WithCapturer(snapshot.NewExporter(*screenshots, cfg.CellSize)))
	}

	game.NewRunner(g, fe, cfg.TickRate, opts...).Run()

	stats := g.GetStateManager()
	glog.Infof("session over: %d games, best %d, average %.1f, median %.1f, average length %v",
		stats.GamesPlayed(), stats.GetHighScore(), stats.AverageScore(), stats.MedianScore(),
		stats.AverageDuration().Round(time.Second))
}

func openFrontend(name string, cfg types.Config) (frontend, error) {
	switch name {
	case "terminal":
		t, err := terminal.Open()
		if err != nil {
			return nil, err
		}
		return t, nil
	case "window":
		return ui.OpenWindow(cfg), nil
	default:
		return nil, errors.Errorf("unknown frontend %q", name)
	}
}
