// pkg/render/color.go
package render

import "image/color"

// ArenaColors holds every color the renderer needs for the static map and actors.
type ArenaColors struct {
	Background  color.RGBA
	Wall        color.RGBA
	WallStroke  color.RGBA
	PlayerBody  color.RGBA
	EnemyBody   color.RGBA
	FireBody    color.RGBA
	Particle    color.RGBA
	DashCore    color.RGBA
	DashGlow    color.RGBA
	Heal        color.RGBA
	Buff        color.RGBA
	UltTrail    color.RGBA
	UltCore     color.RGBA
	BarBack     color.RGBA
	HealthHigh  color.RGBA
	HealthMid   color.RGBA
	HealthLow   color.RGBA
	Text        color.RGBA
	TextLight   color.RGBA
	Overlay     color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade scales a color by alpha in [0, 1]. color.RGBA is premultiplied, so every
// channel is scaled.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	switch {
	case alpha <= 0:
		return color.RGBA{}
	case alpha >= 1:
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// HealthColor picks the bar color: above half is high, above 30% is mid, otherwise low.
func (c ArenaColors) HealthColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.5:
		return c.HealthHigh
	case fraction > 0.3:
		return c.HealthMid
	default:
		return c.HealthLow
	}
}
