package game

// FloatsPerVertex is the layout of buffers built here: x, y, r, g, b, a.
const FloatsPerVertex = 6

// SceneVertices appends the triangles for every live entity to buf and
// returns it. Coordinates are normalized device coordinates, so the
// renderer can upload the buffer as-is.
func SceneVertices(s *GameSession, buf []float32) []float32 {
	buf = buf[:0]

	for _, e := range s.Enemies {
		buf = enemyVertices(buf, e)
	}
	for _, b := range s.EnemyBullets {
		buf = appendQuad(buf, b.Pos.X-EnemyBulletSz/2, b.Pos.Y-EnemyBulletSz/2, EnemyBulletSz, EnemyBulletSz, Palette.EnemyBullet)
	}
	for _, b := range s.Player.Bullets {
		buf = appendQuad(buf, b.Pos.X-BulletWidth/2, b.Pos.Y, BulletWidth, BulletHeight, Palette.Bullet)
	}

	if s.State != StateLost {
		p := s.Player
		buf = appendTri(buf,
			p.Pos.X, p.Pos.Y,
			p.Pos.X+p.Size, p.Pos.Y,
			p.Pos.X+p.Size/2, p.Pos.Y+p.Size,
			Palette.Player)
	}
	return buf
}

// enemyVertices draws the variant shape centred on e.Pos: basic enemies are
// downward triangles, the front line are squares, advanced ones diamonds.
func enemyVertices(buf []float32, e Enemy) []float32 {
	h := e.Size / 2
	x, y := e.Pos.X, e.Pos.Y
	col := EnemyColor(e.Kind)
	switch e.Kind {
	case EnemyBasic:
		return appendTri(buf, x-h, y+h, x+h, y+h, x, y-h, col)
	case EnemyFrontLine:
		return appendQuad(buf, x-h, y-h, e.Size, e.Size, col)
	case EnemyAdvanced:
		buf = appendTri(buf, x-h, y, x+h, y, x, y+h, col)
		return appendTri(buf, x-h, y, x, y-h, x+h, y, col)
	}
	return buf
}

func appendTri(buf []float32, x0, y0, x1, y1, x2, y2 float64, col RGB) []float32 {
	r, g, b := col.Floats()
	return append(buf,
		float32(x0), float32(y0), r, g, b, 1,
		float32(x1), float32(y1), r, g, b, 1,
		float32(x2), float32(y2), r, g, b, 1,
	)
}

// appendQuad adds an axis-aligned rectangle with bottom-left corner (x, y).
func appendQuad(buf []float32, x, y, w, h float64, col RGB) []float32 {
	buf = appendTri(buf, x, y, x+w, y, x+w, y+h, col)
	return appendTri(buf, x, y, x+w, y+h, x, y+h, col)
}
