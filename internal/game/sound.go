package game

import "shooter/internal/audio"

//go:generate go tool mockgen -destination=./mocks/sound_player_mock.go -package=mocks . SoundPlayer

// SoundPlayer is the subset of audio.Player the game drives.
type SoundPlayer interface {
	Play(kind audio.SoundKind)
}

// SoundFor maps an event to its effect. ok is false for silent events.
func SoundFor(t EventType) (kind audio.SoundKind, ok bool) {
	switch t {
	case EventBulletFired:
		return audio.SoundFire, true
	case EventEnemyDestroyed:
		return audio.SoundEnemyHit, true
	case EventVolleyFired:
		return audio.SoundVolley, true
	case EventFormationShifted:
		return audio.SoundFormationStep, true
	case EventPlayerHit:
		return audio.SoundPlayerHit, true
	case EventWaveCleared:
		return audio.SoundWaveCleared, true
	}
	return 0, false
}

// AttachSound plays the matching effect for every event on bus.
func AttachSound(bus *EventBus, p SoundPlayer) {
	bus.SubscribeAll(func(e Event) {
		if kind, ok := SoundFor(e.Type); ok {
			p.Play(kind)
		}
	})
}
