package game

import "log"

// AttachLog writes one line per gameplay event to l, tagged with the
// session ID. Bullet shots are skipped; they would drown everything else.
func AttachLog(bus *EventBus, s *GameSession, l *log.Logger) {
	bus.SubscribeAll(func(e Event) {
		switch e.Type {
		case EventBulletFired:
			return
		case EventEnemyDestroyed:
			l.Printf("session=%s tick=%d %s kind=%s at=(%.2f,%.2f) score=%d", s.ID, e.Tick, e.Type, e.Enemy, e.Pos.X, e.Pos.Y, e.Data)
		case EventFormationShifted:
			l.Printf("session=%s tick=%d %s dx=%+.2f abspos=%d", s.ID, e.Tick, e.Type, e.Pos.X, e.Data)
		case EventVolleyFired:
			l.Printf("session=%s tick=%d %s bullets=%d", s.ID, e.Tick, e.Type, e.Data)
		default:
			l.Printf("session=%s tick=%d %s score=%d", s.ID, e.Tick, e.Type, e.Data)
		}
	})
}
