package game

// Hit records one bullet/enemy pair removed by ResolveBulletHits.
type Hit struct {
	Bullet Bullet
	Enemy  Enemy
}

// ResolveBulletHits tests each bullet against the enemies in order. The first
// enemy closer than radius is removed together with the bullet and the scan
// moves on to the next bullet, so a bullet kills at most one enemy. Ties go
// to the earlier enemy, not the nearest. Both slices are filtered in place.
func ResolveBulletHits(bullets []Bullet, enemies []Enemy, radius float64) ([]Bullet, []Enemy, []Hit) {
	var hits []Hit
	kept := bullets[:0]
	for _, b := range bullets {
		idx := -1
		for j := range enemies {
			if b.Pos.Dist(enemies[j].Pos) < radius {
				idx = j
				break
			}
		}
		if idx < 0 {
			kept = append(kept, b)
			continue
		}
		hits = append(hits, Hit{Bullet: b, Enemy: enemies[idx]})
		enemies = append(enemies[:idx], enemies[idx+1:]...)
	}
	clear(bullets[len(kept):])
	return kept, enemies, hits
}

// FirstHitOn returns the index of the first bullet closer than radius to
// target, or -1.
func FirstHitOn(bullets []Bullet, target Vec2, radius float64) int {
	for i, b := range bullets {
		if b.Pos.Dist(target) < radius {
			return i
		}
	}
	return -1
}
