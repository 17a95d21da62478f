package game

// Bullet is a projectile moving along y at a fixed per-tick speed.
// Player bullets have a positive speed, enemy bullets a negative one.
type Bullet struct {
	Pos   Vec2
	Speed float64
}

// Player is the single ship. Pos is the bottom-left corner of its triangle.
type Player struct {
	Pos     Vec2
	Size    float64
	Speed   float64
	Bullets []Bullet
}

func NewPlayer(speed float64) *Player {
	return &Player{
		Pos:   Vec2{X: PlayerStartX, Y: PlayerStartY},
		Size:  PlayerSize,
		Speed: speed,
	}
}

// Muzzle is where new bullets spawn: the tip of the triangle.
func (p *Player) Muzzle() Vec2 {
	return Vec2{X: p.Pos.X + p.Size/2, Y: p.Pos.Y + p.Size}
}

// Center is the point enemy bullets are tested against.
func (p *Player) Center() Vec2 {
	return Vec2{X: p.Pos.X + p.Size/2, Y: p.Pos.Y + p.Size/2}
}

// Move shifts the player horizontally by dx, keeping the ship on screen.
func (p *Player) Move(dx float64) {
	p.Pos.X = clampF(p.Pos.X+dx, ScreenMin, ScreenMax-p.Size)
}

// EnemyKind tags the enemy variant.
type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemyFrontLine
	EnemyAdvanced
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyFrontLine:
		return "frontline"
	case EnemyAdvanced:
		return "advanced"
	}
	return "unknown"
}

// Score returns the kill value of the variant.
func (k EnemyKind) Score() int {
	switch k {
	case EnemyBasic:
		return ScoreBasic
	case EnemyFrontLine:
		return ScoreFrontLine
	case EnemyAdvanced:
		return ScoreAdvanced
	}
	return 0
}

// Enemy is one member of the formation. Pos is its centre.
type Enemy struct {
	ID   uint64
	Kind EnemyKind
	Pos  Vec2
	Size float64
}

// SpawnFormation lays out three rows of cols enemies: front line nearest
// the player, then basic, then advanced. IDs start at firstID. A
// non-positive column count yields no enemies.
func SpawnFormation(cfg Config, firstID uint64) []Enemy {
	if cfg.Columns <= 0 {
		return nil
	}
	rows := [...]EnemyKind{EnemyFrontLine, EnemyBasic, EnemyAdvanced}
	out := make([]Enemy, 0, len(rows)*cfg.Columns)
	x0 := -float64(cfg.Columns-1) * cfg.ColumnGap / 2
	id := firstID
	for r, kind := range rows {
		y := cfg.FormationY + float64(r)*cfg.RowGap
		for c := 0; c < cfg.Columns; c++ {
			out = append(out, Enemy{
				ID:   id,
				Kind: kind,
				Pos:  Vec2{X: x0 + float64(c)*cfg.ColumnGap, Y: y},
				Size: EnemySize,
			})
			id++
		}
	}
	return out
}
