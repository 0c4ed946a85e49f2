// Package chirp plays the short sound of a boost.
package chirp

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)
	Duration   = 120 * time.Millisecond

	fromFreq = 660.0
	toFreq   = 1320.0
	volume   = 0.25
)

// Generator is a rising sine sweep with a linear fade out.
type Generator struct {
	sr    beep.SampleRate
	total int
	pos   int
	phase float64
}

func NewGenerator(sr beep.SampleRate, d time.Duration) *Generator {
	return &Generator{
		sr:    sr,
		total: sr.N(d),
	}
}

func (g *Generator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := fromFreq + (toFreq-fromFreq)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := math.Sin(g.phase) * (1 - progress) * volume
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Generator) Err() error {
	return nil
}

// Player mixes chirps into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init opens the audio device. Playing before Init is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewGenerator(SampleRate, Duration))
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
