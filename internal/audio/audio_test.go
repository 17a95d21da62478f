package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

var allKinds = []SoundKind{
	SoundFire,
	SoundEnemyHit,
	SoundVolley,
	SoundFormationStep,
	SoundPlayerHit,
	SoundWaveCleared,
}

func TestGenerateWithinRange(t *testing.T) {
	for _, kind := range allKinds {
		samples := Generate(kind)
		if len(samples) == 0 {
			t.Errorf("Expected samples for kind %d, got none", kind)
			continue
		}
		for i, s := range samples {
			if math.IsNaN(s) || s < -1 || s > 1 {
				t.Errorf("Kind %d sample %d out of range: %f", kind, i, s)
				break
			}
		}
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	if samples := Generate(SoundKind(42)); samples != nil {
		t.Errorf("Expected nil for unknown kind, got %d samples", len(samples))
	}
}

func TestSoftSatIsBounded(t *testing.T) {
	for _, x := range []float64{-100, -2, -1, -0.5, 0, 0.5, 1, 2, 100} {
		if y := softSat(x); y < -1 || y > 1 {
			t.Errorf("softSat(%f) = %f, expected within [-1,1]", x, y)
		}
	}
}

func TestEncodeStereoF32(t *testing.T) {
	buf := EncodeStereoF32([]float64{0.5, -0.25}, 0.5)
	if len(buf) != 16 {
		t.Fatalf("Expected 16 bytes, got %d", len(buf))
	}
	want := []float32{0.25, 0.25, -0.125, -0.125}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("Float %d: expected %f, got %f", i, w, got)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SHOOTER_AUDIO_ENABLED", "false")
	t.Setenv("SHOOTER_VOLUME", "150")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.Volume)
	}
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("SHOOTER_AUDIO_ENABLED", "maybe")
	t.Setenv("SHOOTER_VOLUME", "loud")

	if got, want := LoadConfig(), DefaultConfig(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestSilent(t *testing.T) {
	var p Player = Silent{}
	p.Play(SoundFire)
	if err := p.Close(); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}

func TestEffectDurations(t *testing.T) {
	tests := []struct {
		kind SoundKind
		want int
	}{
		{SoundPlayerHit, int(0.6 * SampleRate)},
		{SoundWaveCleared, 3*int(0.07*SampleRate) + int(0.4*SampleRate)},
	}
	for _, tt := range tests {
		if got := len(Generate(tt.kind)); got != tt.want {
			t.Errorf("Kind %d: expected %d samples, got %d", tt.kind, tt.want, got)
		}
	}
}
