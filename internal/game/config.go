package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Screen bounds in normalized device coordinates.
const (
	ScreenMin = -1.0
	ScreenMax = 1.0
)

// Player geometry.
const (
	PlayerSize    = 0.12
	PlayerStartX  = -PlayerSize / 2
	PlayerStartY  = -0.9
	BulletWidth   = 0.01
	BulletHeight  = 0.04
	EnemySize     = 0.08
	EnemyBulletSz = 0.02
)

// Kill values per enemy variant.
const (
	ScoreBasic     = 10
	ScoreFrontLine = 20
	ScoreAdvanced  = 30
)

// Config holds every tunable of a session. Speeds and offsets are in
// normalized coordinates per tick; intervals are in ticks.
type Config struct {
	TickRate int // simulation ticks per second

	FormationInterval int
	FormationDelta    float64

	VolleyInterval int
	VolleyOffset   float64

	PlayerSpeed      float64 // per tick while a move key is held
	PlayerStep       float64 // per discrete key press
	BulletSpeed      float64
	EnemyBulletSpeed float64 // negative: travels down
	MaxPlayerBullets int     // 0 = unlimited

	HitRadius float64

	Columns    int
	ColumnGap  float64
	RowGap     float64
	FormationY float64 // y of the row nearest the player
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TickRate: 500,

		FormationInterval: 1000,
		FormationDelta:    0.1,

		VolleyInterval: 1000,
		VolleyOffset:   0.05,

		PlayerSpeed:      0.003,
		PlayerStep:       0.05,
		BulletSpeed:      0.004,
		EnemyBulletSpeed: -0.002,
		MaxPlayerBullets: 0,

		HitRadius: 0.1,

		Columns:    8,
		ColumnGap:  0.2,
		RowGap:     0.18,
		FormationY: 0.3,
	}
}

// Accepted ranges for the tunables that can come from the environment or
// the command line.
const (
	MinTickRate = 1
	MaxTickRate = 10000
	MinColumns  = 1
	MaxColumns  = 9
	maxInterval = 1 << 30
)

// LoadConfig returns DefaultConfig with SHOOTER_* environment overrides
// applied. Unparseable or out-of-range values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	envInt("SHOOTER_TICK_RATE", &cfg.TickRate, MinTickRate, MaxTickRate)
	envInt("SHOOTER_FORMATION_INTERVAL", &cfg.FormationInterval, 1, maxInterval)
	envInt("SHOOTER_VOLLEY_INTERVAL", &cfg.VolleyInterval, 1, maxInterval)
	envInt("SHOOTER_MAX_BULLETS", &cfg.MaxPlayerBullets, 0, 1<<20)
	envInt("SHOOTER_COLUMNS", &cfg.Columns, MinColumns, MaxColumns)

	envFloat("SHOOTER_FORMATION_DELTA", &cfg.FormationDelta, 0, 1)
	envFloat("SHOOTER_BULLET_SPEED", &cfg.BulletSpeed, 0.0001, 0.5)
	envFloat("SHOOTER_PLAYER_SPEED", &cfg.PlayerSpeed, 0.0001, 0.5)
	envFloat("SHOOTER_HIT_RADIUS", &cfg.HitRadius, 0.001, 1)

	// Enemy bullets are configured by magnitude.
	speed := -cfg.EnemyBulletSpeed
	envFloat("SHOOTER_ENEMY_BULLET_SPEED", &speed, 0.0001, 0.5)
	cfg.EnemyBulletSpeed = -speed

	return cfg
}

// Validate reports every field a session cannot run with. Command-line
// flags write into Config directly, so callers check it before starting.
func (c Config) Validate() error {
	var errs []error
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tick rate %d out of range [%d, %d]", c.TickRate, MinTickRate, MaxTickRate))
	}
	if c.Columns < MinColumns || c.Columns > MaxColumns {
		errs = append(errs, fmt.Errorf("columns %d out of range [%d, %d]", c.Columns, MinColumns, MaxColumns))
	}
	if c.FormationInterval < 1 {
		errs = append(errs, fmt.Errorf("formation interval %d must be positive", c.FormationInterval))
	}
	if c.VolleyInterval < 1 {
		errs = append(errs, fmt.Errorf("volley interval %d must be positive", c.VolleyInterval))
	}
	if c.MaxPlayerBullets < 0 {
		errs = append(errs, fmt.Errorf("max bullets %d must not be negative", c.MaxPlayerBullets))
	}
	if c.BulletSpeed <= 0 {
		errs = append(errs, fmt.Errorf("bullet speed %g must be positive", c.BulletSpeed))
	}
	if c.EnemyBulletSpeed >= 0 {
		errs = append(errs, fmt.Errorf("enemy bullet speed %g must be negative", c.EnemyBulletSpeed))
	}
	if c.HitRadius <= 0 {
		errs = append(errs, fmt.Errorf("hit radius %g must be positive", c.HitRadius))
	}
	return errors.Join(errs...)
}

func envInt(key string, dst *int, lo, hi int) {
	s := os.Getenv(key)
	if s == "" {
		return
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < lo || v > hi {
		return
	}
	*dst = v
}

func envFloat(key string, dst *float64, lo, hi float64) {
	s := os.Getenv(key)
	if s == "" {
		return
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < lo || v > hi {
		return
	}
	*dst = v
}
