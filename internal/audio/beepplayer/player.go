// Package beepplayer plays sound effects through the beep speaker.
package beepplayer

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"shooter/internal/audio"
)

var sampleRate = beep.SampleRate(audio.SampleRate)

// Player mixes effects into a single speaker stream.
type Player struct {
	mixer  *beep.Mixer
	volume float64

	mu    sync.Mutex
	cache map[audio.SoundKind][]float64
}

// New initializes the speaker with a 100ms buffer and starts the mixer.
func New(cfg audio.Config) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		cache:  make(map[audio.SoundKind][]float64),
	}
	speaker.Play(p.mixer)
	return p, nil
}

func (p *Player) Play(kind audio.SoundKind) {
	samples := p.samples(kind)
	if len(samples) == 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(newSampleStreamer(samples, p.volume))
	speaker.Unlock()
}

func (p *Player) samples(kind audio.SoundKind) []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.cache[kind]; ok {
		return s
	}
	s := audio.Generate(kind)
	p.cache[kind] = s
	return s
}

func (p *Player) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

// newSampleStreamer plays mono samples on both channels once.
func newSampleStreamer(samples []float64, gain float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := 0
		for n < len(out) && pos < len(samples) {
			v := samples[pos] * gain
			out[n][0] = v
			out[n][1] = v
			n++
			pos++
		}
		return n, true
	})
}
