package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background  RGB
	Player      RGB
	Bullet      RGB
	EnemyBullet RGB
	Basic       RGB
	FrontLine   RGB
	Advanced    RGB
	Text        RGB
	Alert       RGB
}{
	Background:  RGB{R: 0, G: 0, B: 0},
	Player:      RGB{R: 255, G: 255, B: 255},
	Bullet:      RGB{R: 255, G: 230, B: 90},
	EnemyBullet: RGB{R: 255, G: 80, B: 80},
	Basic:       RGB{R: 90, G: 200, B: 90},
	FrontLine:   RGB{R: 70, G: 140, B: 255},
	Advanced:    RGB{R: 220, G: 90, B: 220},
	Text:        RGB{R: 255, G: 255, B: 255},
	Alert:       RGB{R: 255, G: 80, B: 80},
}

// EnemyColor returns the body colour of a variant.
func EnemyColor(k EnemyKind) RGB {
	switch k {
	case EnemyBasic:
		return Palette.Basic
	case EnemyFrontLine:
		return Palette.FrontLine
	case EnemyAdvanced:
		return Palette.Advanced
	}
	return Palette.Text
}
