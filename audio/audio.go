// Package audio plays short synthesized cues for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/starvingfish/game"
)

const sampleRate = beep.SampleRate(44100)

// Tone is one step of a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Cues maps game events to tone sequences.
var Cues = map[game.Event][]Tone{
	game.EventRoundStart: {{Freq: 523, Duration: 60 * time.Millisecond}, {Freq: 784, Duration: 90 * time.Millisecond}},
	game.EventFoodEaten:  {{Freq: 880, Duration: 50 * time.Millisecond}},
	game.EventBubbleHit:  {{Freq: 330, Duration: 120 * time.Millisecond}, {Freq: 220, Duration: 240 * time.Millisecond}},
}

// Player plays cues on the default speaker. A Player whose speaker failed
// to initialize is silent.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer initializes the speaker. The returned Player is usable even
// when err is non-nil.
func NewPlayer() (*Player, error) {
	p := &Player{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.initialized = true
	return p, nil
}

// Play queues the cue for e, if any.
func (p *Player) Play(e game.Event) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	s, err := Sequence(sampleRate, Cues[e])
	if err != nil || s == nil {
		return
	}
	speaker.Play(s)
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Sequence builds a streamer that plays tones back to back at half volume.
// It returns nil for an empty sequence.
func Sequence(sr beep.SampleRate, tones []Tone) (beep.Streamer, error) {
	if len(tones) == 0 {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(t.Duration), sine))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.5}, nil
}
