package game

// AdvanceBullets moves every bullet by its speed and drops those that
// crossed their bound: y > ScreenMax for upward bullets, y < ScreenMin for
// downward ones. Survivors keep their relative order. The slice is
// filtered in place and the shortened slice returned.
func AdvanceBullets(bullets []Bullet) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Pos.Y += b.Speed
		if outOfBounds(b) {
			continue
		}
		kept = append(kept, b)
	}
	clear(bullets[len(kept):])
	return kept
}

func outOfBounds(b Bullet) bool {
	if b.Speed >= 0 {
		return b.Pos.Y > ScreenMax
	}
	return b.Pos.Y < ScreenMin
}
