package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"shooter/internal/game"
)

const (
	glyphPlayer      = '▲'
	glyphBullet      = '|'
	glyphEnemyBullet = '•'
	glyphBasic       = 'V'
	glyphFrontLine   = '■'
	glyphAdvanced    = '◆'
)

// hudRows are reserved at the top of the terminal for the status line.
const hudRows = 1

func style(c game.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// CellFor maps a normalized position onto the play area below the HUD.
// ok is false when the position falls outside the terminal.
func CellFor(p game.Vec2, w, h int) (x, y int, ok bool) {
	ph := h - hudRows
	if w <= 0 || ph <= 0 {
		return 0, 0, false
	}
	x = int((p.X - game.ScreenMin) / (game.ScreenMax - game.ScreenMin) * float64(w))
	y = int((game.ScreenMax - p.Y) / (game.ScreenMax - game.ScreenMin) * float64(ph))
	if x < 0 || x >= w || y < 0 || y >= ph {
		return 0, 0, false
	}
	return x, y + hudRows, true
}

func enemyGlyph(k game.EnemyKind) rune {
	switch k {
	case game.EnemyBasic:
		return glyphBasic
	case game.EnemyFrontLine:
		return glyphFrontLine
	case game.EnemyAdvanced:
		return glyphAdvanced
	}
	return '?'
}

// Draw renders the session onto screen. It only reads s.
func Draw(screen tcell.Screen, s *game.GameSession) {
	screen.Clear()
	w, h := screen.Size()

	put := func(p game.Vec2, r rune, st tcell.Style) {
		if x, y, ok := CellFor(p, w, h); ok {
			screen.SetContent(x, y, r, nil, st)
		}
	}

	for _, e := range s.Enemies {
		put(e.Pos, enemyGlyph(e.Kind), style(game.EnemyColor(e.Kind)))
	}
	for _, b := range s.EnemyBullets {
		put(b.Pos, glyphEnemyBullet, style(game.Palette.EnemyBullet))
	}
	for _, b := range s.Player.Bullets {
		put(b.Pos, glyphBullet, style(game.Palette.Bullet))
	}
	if s.State != game.StateLost {
		put(s.Player.Center(), glyphPlayer, style(game.Palette.Player))
	}

	drawString(screen, 0, 0, statusLine(s), style(statusColor(s)))
	screen.Show()
}

func statusLine(s *game.GameSession) string {
	switch s.State {
	case game.StateWon:
		return fmt.Sprintf("Score: %d  Wave cleared! SPACE to play again, q to quit", s.Score)
	case game.StateLost:
		return fmt.Sprintf("Score: %d  You were hit. SPACE to play again, q to quit", s.Score)
	}
	return fmt.Sprintf("Score: %d  Enemies: %d", s.Score, len(s.Enemies))
}

func statusColor(s *game.GameSession) game.RGB {
	if s.State == game.StateLost {
		return game.Palette.Alert
	}
	return game.Palette.Text
}

func drawString(screen tcell.Screen, x, y int, text string, st tcell.Style) {
	w, _ := screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, st)
		x++
	}
}
