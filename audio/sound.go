// Package audio plays short sine-tone effects for game outcomes.
package audio

import (
	"time"

	"classic-snake/game"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// tone is one effect: a sequence of (frequency, duration) notes.
type tone []note

type note struct {
	freq     int
	duration time.Duration
}

var tones = map[game.Outcome]tone{
	game.OutcomeAte:       {{880, 50 * time.Millisecond}},
	game.OutcomeBoardFull: {{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 160 * time.Millisecond}},
	game.OutcomeDied:      {{220, 250 * time.Millisecond}, {165, 300 * time.Millisecond}},
}

// Player turns tick outcomes into sounds. It implements game.Listener.
type Player struct {
	enabled bool
}

// NewPlayer opens the audio device.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	return &Player{enabled: true}, nil
}

// Silent returns a player that never opens a device.
func Silent() *Player {
	return &Player{}
}

func (p *Player) OnOutcome(o game.Outcome, _ game.Snapshot) {
	t, ok := tones[o]
	if !ok || !p.enabled {
		return
	}
	s, err := t.streamer()
	if err != nil {
		glog.Warningf("audio: %v", err)
		return
	}
	speaker.Play(s)
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

func (t tone) streamer() (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(t))
	for _, n := range t {
		sine, err := generators.SineTone(sampleRate, float64(n.freq))
		if err != nil {
			return nil, errors.Wrapf(err, "sine tone %dHz", n.freq)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), sine))
	}
	return beep.Seq(parts...), nil
}
