package game

import (
	"errors"
	"math"
	"testing"
)

// quietConfig keeps formation and volley out of the way unless a test
// lowers the intervals.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.FormationInterval = 1 << 30
	cfg.VolleyInterval = 1 << 30
	return cfg
}

func TestNewGameSession(t *testing.T) {
	s := NewGameSession(DefaultConfig(), nil)
	if s.State != StatePlaying {
		t.Errorf("Expected StatePlaying, got %s", s.State)
	}
	if want := 3 * DefaultConfig().Columns; len(s.Enemies) != want {
		t.Errorf("Expected %d enemies, got %d", want, len(s.Enemies))
	}
	kinds := map[EnemyKind]int{}
	ids := map[uint64]bool{}
	for _, e := range s.Enemies {
		kinds[e.Kind]++
		if ids[e.ID] {
			t.Errorf("Duplicate enemy ID %d", e.ID)
		}
		ids[e.ID] = true
	}
	for _, k := range []EnemyKind{EnemyBasic, EnemyFrontLine, EnemyAdvanced} {
		if kinds[k] != DefaultConfig().Columns {
			t.Errorf("Expected %d %s enemies, got %d", DefaultConfig().Columns, k, kinds[k])
		}
	}
	if s.ID.String() == "" {
		t.Error("Expected a session ID")
	}
}

func TestFireSpawnsAtMuzzle(t *testing.T) {
	s := NewGameSession(quietConfig(), nil)
	if !s.Fire() {
		t.Fatal("Expected Fire to succeed")
	}
	if len(s.Player.Bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(s.Player.Bullets))
	}
	b := s.Player.Bullets[0]
	if b.Pos != s.Player.Muzzle() {
		t.Errorf("Expected bullet at muzzle %v, got %v", s.Player.Muzzle(), b.Pos)
	}
	if b.Speed != s.Cfg.BulletSpeed {
		t.Errorf("Expected speed %v, got %v", s.Cfg.BulletSpeed, b.Speed)
	}
}

func TestFireRespectsCap(t *testing.T) {
	cfg := quietConfig()
	cfg.MaxPlayerBullets = 2
	s := NewGameSession(cfg, nil)
	s.Fire()
	s.Fire()
	if s.Fire() {
		t.Error("Expected third shot to be refused")
	}
	if len(s.Player.Bullets) != 2 {
		t.Errorf("Expected 2 bullets, got %d", len(s.Player.Bullets))
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	s := NewGameSession(quietConfig(), nil)
	x0 := s.Player.Pos.X
	s.NudgePlayer(1)
	if got := s.Player.Pos.X - x0; math.Abs(got-s.Cfg.PlayerStep) > 1e-9 {
		t.Errorf("Expected nudge of %v, got %v", s.Cfg.PlayerStep, got)
	}
	for i := 0; i < 1000; i++ {
		s.MovePlayer(-1)
	}
	if s.Player.Pos.X != ScreenMin {
		t.Errorf("Expected player clamped at %v, got %v", ScreenMin, s.Player.Pos.X)
	}
	for i := 0; i < 1000; i++ {
		s.NudgePlayer(1)
	}
	if want := ScreenMax - s.Player.Size; s.Player.Pos.X != want {
		t.Errorf("Expected player clamped at %v, got %v", want, s.Player.Pos.X)
	}
}

func TestTickEnemyBulletHitsPlayer(t *testing.T) {
	s := NewGameSession(quietConfig(), nil)
	s.EnemyBullets = []Bullet{{Pos: s.Player.Center(), Speed: -0.001}}

	err := s.Tick()
	if !errors.Is(err, ErrPlayerHit) {
		t.Fatalf("Expected ErrPlayerHit, got %v", err)
	}
	if s.State != StateLost {
		t.Errorf("Expected StateLost, got %s", s.State)
	}
	if err := s.Tick(); err != nil {
		t.Errorf("Expected finished session to ignore ticks, got %v", err)
	}
}

func TestTickEnemyBulletMissesPlayer(t *testing.T) {
	s := NewGameSession(quietConfig(), nil)
	c := s.Player.Center()
	s.EnemyBullets = []Bullet{{Pos: Vec2{X: c.X + 0.5, Y: c.Y}, Speed: -0.001}}

	if err := s.Tick(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.State != StatePlaying {
		t.Errorf("Expected StatePlaying, got %s", s.State)
	}
}

func TestTickBulletDestroysEnemy(t *testing.T) {
	s := NewGameSession(quietConfig(), nil)
	target := s.Enemies[0]
	s.Player.Bullets = []Bullet{{Pos: target.Pos, Speed: 0.001}}

	if err := s.Tick(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(s.Player.Bullets) != 0 {
		t.Errorf("Expected bullet consumed, %d left", len(s.Player.Bullets))
	}
	if len(s.Enemies) != 3*s.Cfg.Columns-1 {
		t.Errorf("Expected one enemy fewer, got %d", len(s.Enemies))
	}
	for _, e := range s.Enemies {
		if e.ID == target.ID {
			t.Errorf("Enemy %d still present", target.ID)
		}
	}
	if s.Score != target.Kind.Score() {
		t.Errorf("Expected score %d, got %d", target.Kind.Score(), s.Score)
	}
}

func TestTickWaveCleared(t *testing.T) {
	s := NewGameSession(quietConfig(), nil)
	s.Enemies = []Enemy{{ID: 1, Kind: EnemyAdvanced, Pos: Vec2{X: 0, Y: 0.5}}}
	s.Player.Bullets = []Bullet{{Pos: Vec2{X: 0, Y: 0.5}, Speed: 0.001}}

	if err := s.Tick(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.State != StateWon {
		t.Errorf("Expected StateWon, got %s", s.State)
	}
	if s.Score != ScoreAdvanced {
		t.Errorf("Expected score %d, got %d", ScoreAdvanced, s.Score)
	}
}

func TestTickFormationShift(t *testing.T) {
	cfg := quietConfig()
	cfg.FormationInterval = 3
	s := NewGameSession(cfg, nil)
	x0 := s.Enemies[0].Pos.X

	for i := 0; i < 2; i++ {
		s.Tick()
	}
	if s.Enemies[0].Pos.X != x0 {
		t.Fatalf("Expected no shift before the interval")
	}
	s.Tick()
	if got := s.Enemies[0].Pos.X - x0; math.Abs(got-cfg.FormationDelta) > 1e-9 {
		t.Errorf("Expected shift of %v, got %v", cfg.FormationDelta, got)
	}
	if s.FormationClock != 0 {
		t.Errorf("Expected formation clock reset, got %d", s.FormationClock)
	}
	if s.Formation.AbsPos != 1 || !s.Formation.FullRight {
		t.Errorf("Expected formation drifted right, got %+v", s.Formation)
	}

	// Next two transitions go left.
	for i := 0; i < 6; i++ {
		s.Tick()
	}
	if got := s.Enemies[0].Pos.X - x0; math.Abs(got+cfg.FormationDelta) > 1e-9 {
		t.Errorf("Expected net shift of %v, got %v", -cfg.FormationDelta, got)
	}
}

func TestTickCollidesBeforeFormationShift(t *testing.T) {
	cfg := quietConfig()
	cfg.FormationInterval = 1
	cfg.FormationDelta = 0.5
	s := NewGameSession(cfg, nil)

	// Leftmost front-line enemy: after the shift nothing is within reach of
	// its old position.
	target := s.Enemies[0]
	s.Player.Bullets = []Bullet{{Pos: target.Pos, Speed: 0.001}}

	if err := s.Tick(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Formation.AbsPos != 1 {
		t.Fatalf("Expected the formation to shift this tick, got %+v", s.Formation)
	}
	for _, e := range s.Enemies {
		if e.ID == target.ID {
			t.Fatalf("Expected enemy %d hit at its pre-shift position", target.ID)
		}
	}
	if len(s.Player.Bullets) != 0 {
		t.Errorf("Expected bullet consumed, %d left", len(s.Player.Bullets))
	}
	if s.Score != target.Kind.Score() {
		t.Errorf("Expected score %d, got %d", target.Kind.Score(), s.Score)
	}
}

func TestTickVolley(t *testing.T) {
	cfg := quietConfig()
	cfg.VolleyInterval = 4
	s := NewGameSession(cfg, nil)

	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if len(s.EnemyBullets) != 0 {
		t.Fatalf("Expected no volley before the interval, got %d bullets", len(s.EnemyBullets))
	}
	s.Tick()
	if len(s.EnemyBullets) != len(s.Enemies) {
		t.Fatalf("Expected one bullet per enemy (%d), got %d", len(s.Enemies), len(s.EnemyBullets))
	}
	for i, b := range s.EnemyBullets {
		e := s.Enemies[i]
		if b.Pos.X != e.Pos.X || math.Abs(b.Pos.Y-(e.Pos.Y-cfg.VolleyOffset)) > 1e-9 {
			t.Errorf("Bullet %d at %v, expected below enemy at %v", i, b.Pos, e.Pos)
		}
		if b.Speed != cfg.EnemyBulletSpeed {
			t.Errorf("Expected speed %v, got %v", cfg.EnemyBulletSpeed, b.Speed)
		}
	}
	if s.VolleyClock != 0 {
		t.Errorf("Expected volley clock reset, got %d", s.VolleyClock)
	}
}

func TestQuitAndRestart(t *testing.T) {
	s := NewGameSession(quietConfig(), nil)
	id := s.ID
	s.Fire()
	s.Tick()
	s.Quit()
	if s.State != StateQuit {
		t.Fatalf("Expected StateQuit, got %s", s.State)
	}
	if s.Fire() {
		t.Error("Expected Fire to be refused after quit")
	}

	s.Restart()
	if s.State != StatePlaying || s.Ticks != 0 || s.Score != 0 {
		t.Errorf("Expected fresh session, got state=%s ticks=%d score=%d", s.State, s.Ticks, s.Score)
	}
	if s.ID == id {
		t.Error("Expected a new session ID")
	}
	if len(s.Player.Bullets) != 0 || len(s.EnemyBullets) != 0 {
		t.Error("Expected bullet stores to be empty")
	}
}

func TestEnemyKindScore(t *testing.T) {
	tests := []struct {
		kind EnemyKind
		want int
	}{
		{EnemyBasic, ScoreBasic},
		{EnemyFrontLine, ScoreFrontLine},
		{EnemyAdvanced, ScoreAdvanced},
		{EnemyKind(99), 0},
	}
	for _, tt := range tests {
		if got := tt.kind.Score(); got != tt.want {
			t.Errorf("%s: Expected %d, got %d", tt.kind, tt.want, got)
		}
	}
}
