package game

// Formation drives the side-to-side drift of the enemy block.
// AbsPos counts net steps to the right.
type Formation struct {
	AbsPos    int
	FullRight bool
	FullLeft  bool
}

// Step returns the horizontal shift for the next transition and updates
// the drift state. Reaching one edge clears the other edge's flag, which
// keeps AbsPos within [-1, 1].
func (f *Formation) Step(delta float64) float64 {
	var dx float64
	switch {
	case f.FullRight:
		dx = -delta
		f.AbsPos--
	case f.FullLeft:
		dx = delta
		f.AbsPos++
	default:
		dx = delta
		f.AbsPos++
	}

	switch f.AbsPos {
	case 1:
		f.FullRight = true
		f.FullLeft = false
	case -1:
		f.FullLeft = true
		f.FullRight = false
	}
	return dx
}

// ShiftEnemies moves every enemy horizontally by dx.
func ShiftEnemies(enemies []Enemy, dx float64) {
	for i := range enemies {
		enemies[i].Pos.X += dx
	}
}
