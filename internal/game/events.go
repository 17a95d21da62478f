package game

type EventType int

const (
	EventBulletFired EventType = iota
	EventEnemyDestroyed
	EventVolleyFired
	EventFormationShifted
	EventPlayerHit
	EventWaveCleared
)

func (t EventType) String() string {
	switch t {
	case EventBulletFired:
		return "bullet_fired"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventVolleyFired:
		return "volley_fired"
	case EventFormationShifted:
		return "formation_shifted"
	case EventPlayerHit:
		return "player_hit"
	case EventWaveCleared:
		return "wave_cleared"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	Tick  uint64
	Pos   Vec2
	Enemy EnemyKind // EventEnemyDestroyed only
	Data  int       // Generic payload (bullets in a volley, AbsPos after a shift).
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
	all      []EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	eb.all = append(eb.all, fn)
}

// Emit is a no-op on a nil bus.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range eb.all {
		fn(e)
	}
}
