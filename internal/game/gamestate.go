package game

import (
	"errors"

	"github.com/google/uuid"
)

// ErrPlayerHit ends a session: an enemy bullet reached the player.
var ErrPlayerHit = errors.New("player hit")

type GameState int

const (
	StatePlaying GameState = iota // main gameplay
	StateWon                      // every enemy destroyed
	StateLost                     // player hit
	StateQuit                     // player left
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// GameSession is the whole mutable world of one round. It is owned by a
// single goroutine: Tick and the input methods mutate it, renderers only
// read it between ticks.
type GameSession struct {
	ID    uuid.UUID
	Cfg   Config
	State GameState
	Score int

	Ticks          uint64 // total ticks this session
	FormationClock int    // ticks since the last formation shift
	VolleyClock    int    // ticks since the last enemy volley

	Player       *Player
	Enemies      []Enemy
	EnemyBullets []Bullet
	Formation    Formation

	Events *EventBus
}

// NewGameSession starts a round with a fresh formation. bus may be nil.
func NewGameSession(cfg Config, bus *EventBus) *GameSession {
	s := &GameSession{Cfg: cfg, Events: bus}
	s.reset()
	return s
}

// Restart begins a new round under a new ID, keeping config and bus.
func (s *GameSession) Restart() {
	s.reset()
}

func (s *GameSession) reset() {
	s.ID = uuid.New()
	s.State = StatePlaying
	s.Score = 0
	s.Ticks = 0
	s.FormationClock = 0
	s.VolleyClock = 0
	s.Player = NewPlayer(s.Cfg.PlayerSpeed)
	s.Enemies = SpawnFormation(s.Cfg, 1)
	s.EnemyBullets = s.EnemyBullets[:0]
	s.Formation = Formation{}
}

// MovePlayer applies one tick of held-key movement; dir is -1, 0 or 1.
func (s *GameSession) MovePlayer(dir int) {
	if s.State != StatePlaying || dir == 0 {
		return
	}
	s.Player.Move(float64(dir) * s.Player.Speed)
}

// NudgePlayer applies one discrete key press of movement.
func (s *GameSession) NudgePlayer(dir int) {
	if s.State != StatePlaying || dir == 0 {
		return
	}
	s.Player.Move(float64(dir) * s.Cfg.PlayerStep)
}

// Fire spawns a player bullet at the muzzle. It reports false when the
// round is over or the bullet cap is reached.
func (s *GameSession) Fire() bool {
	if s.State != StatePlaying {
		return false
	}
	if s.Cfg.MaxPlayerBullets > 0 && len(s.Player.Bullets) >= s.Cfg.MaxPlayerBullets {
		return false
	}
	pos := s.Player.Muzzle()
	s.Player.Bullets = append(s.Player.Bullets, Bullet{Pos: pos, Speed: s.Cfg.BulletSpeed})
	s.Events.Emit(Event{Type: EventBulletFired, Tick: s.Ticks, Pos: pos})
	return true
}

// Quit ends the round at the player's request.
func (s *GameSession) Quit() {
	if s.State == StatePlaying {
		s.State = StateQuit
	}
}

// Tick advances the round by one frame: clocks, bullet movement, collisions,
// formation drift, then the enemy volley. It returns ErrPlayerHit on the
// tick the player is hit; ticks on a finished round do nothing.
func (s *GameSession) Tick() error {
	if s.State != StatePlaying {
		return nil
	}
	s.Ticks++
	s.FormationClock++
	s.VolleyClock++

	s.Player.Bullets = AdvanceBullets(s.Player.Bullets)
	s.EnemyBullets = AdvanceBullets(s.EnemyBullets)

	var hits []Hit
	s.Player.Bullets, s.Enemies, hits = ResolveBulletHits(s.Player.Bullets, s.Enemies, s.Cfg.HitRadius)
	for _, h := range hits {
		s.Score += h.Enemy.Kind.Score()
		s.Events.Emit(Event{Type: EventEnemyDestroyed, Tick: s.Ticks, Pos: h.Enemy.Pos, Enemy: h.Enemy.Kind, Data: s.Score})
	}

	if i := FirstHitOn(s.EnemyBullets, s.Player.Center(), s.Cfg.HitRadius); i >= 0 {
		s.State = StateLost
		s.Events.Emit(Event{Type: EventPlayerHit, Tick: s.Ticks, Pos: s.EnemyBullets[i].Pos, Data: s.Score})
		return ErrPlayerHit
	}

	if len(s.Enemies) == 0 {
		s.State = StateWon
		s.Events.Emit(Event{Type: EventWaveCleared, Tick: s.Ticks, Data: s.Score})
		return nil
	}

	if s.FormationClock >= s.Cfg.FormationInterval {
		s.FormationClock = 0
		dx := s.Formation.Step(s.Cfg.FormationDelta)
		ShiftEnemies(s.Enemies, dx)
		s.Events.Emit(Event{Type: EventFormationShifted, Tick: s.Ticks, Pos: Vec2{X: dx}, Data: s.Formation.AbsPos})
	}

	if s.VolleyClock >= s.Cfg.VolleyInterval {
		s.VolleyClock = 0
		n := s.fireVolley()
		s.Events.Emit(Event{Type: EventVolleyFired, Tick: s.Ticks, Data: n})
	}
	return nil
}

// fireVolley spawns one enemy bullet below every live enemy.
func (s *GameSession) fireVolley() int {
	for _, e := range s.Enemies {
		s.EnemyBullets = append(s.EnemyBullets, Bullet{
			Pos:   Vec2{X: e.Pos.X, Y: e.Pos.Y - s.Cfg.VolleyOffset},
			Speed: s.Cfg.EnemyBulletSpeed,
		})
	}
	return len(s.Enemies)
}
