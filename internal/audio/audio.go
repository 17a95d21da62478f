// Package audio holds the procedural sound effects shared by the desktop and
// terminal front-ends. Playback lives in the otoplayer and beepplayer
// subpackages so each binary links only one audio backend.
package audio

import (
	"math"
	"os"
	"strconv"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundFire SoundKind = iota
	SoundEnemyHit
	SoundVolley
	SoundFormationStep
	SoundPlayerHit
	SoundWaveCleared
)

// Player plays sound effects. Implementations must not block the caller.
type Player interface {
	Play(kind SoundKind)
	Close() error
}

// Config controls playback.
type Config struct {
	Enabled bool
	Volume  float64 // 0..1
}

func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 0.58}
}

// LoadConfig applies SHOOTER_AUDIO_ENABLED and SHOOTER_VOLUME (0-100) on
// top of DefaultConfig.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if enabled := os.Getenv("SHOOTER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}
	if volume := os.Getenv("SHOOTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = math.Min(math.Max(float64(val)/100.0, 0), 1)
		}
	}
	return cfg
}

// Silent is a Player that discards everything.
type Silent struct{}

func (Silent) Play(SoundKind) {}
func (Silent) Close() error   { return nil }

// EncodeStereoF32 converts mono samples to interleaved stereo float32 LE,
// scaled by gain.
func EncodeStereoF32(samples []float64, gain float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		v := math.Float32bits(float32(s * gain))
		buf[i*8] = byte(v)
		buf[i*8+1] = byte(v >> 8)
		buf[i*8+2] = byte(v >> 16)
		buf[i*8+3] = byte(v >> 24)
		buf[i*8+4] = byte(v)
		buf[i*8+5] = byte(v >> 8)
		buf[i*8+6] = byte(v >> 16)
		buf[i*8+7] = byte(v >> 24)
	}
	return buf
}
