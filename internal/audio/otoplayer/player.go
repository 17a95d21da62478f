// Package otoplayer plays sound effects through an oto context.
package otoplayer

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"shooter/internal/audio"
)

// formatFloat32LE is oto.FormatFloat32LE.
const formatFloat32LE = 0

// Player owns the oto context and a cache of rendered effects.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu    sync.Mutex
	cache map[audio.SoundKind][]byte
}

// New opens the audio device. The context becomes usable asynchronously;
// effects requested before then are dropped.
func New(cfg audio.Config) (*Player, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, formatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: cfg.Volume,
		cache:  make(map[audio.SoundKind][]byte),
	}, nil
}

func (p *Player) Play(kind audio.SoundKind) {
	select {
	case <-p.ready:
	default:
		return
	}
	data := p.samples(kind)
	if len(data) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func (p *Player) samples(kind audio.SoundKind) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := p.cache[kind]; ok {
		return b
	}
	b := audio.EncodeStereoF32(audio.Generate(kind), 1.0)
	p.cache[kind] = b
	return b
}

// Close suspends the device. oto v2 contexts cannot be destroyed.
func (p *Player) Close() error {
	select {
	case <-p.ready:
		return p.ctx.Suspend()
	default:
		return nil
	}
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(b []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(b, r.data[r.pos:])
	r.pos += n
	return n, nil
}
