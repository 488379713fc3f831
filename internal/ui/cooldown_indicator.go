// internal/ui/cooldown_indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-shooter/pkg/render"
)

// CooldownIndicator — круглый индикатор перезарядки способности. Когда способность
// становится доступной, кружок коротко "вспухает".
type CooldownIndicator struct {
	X, Y    float32
	Radius  float32
	Label   string
	Color   color.RGBA
	readyAt float64
	ready   bool
	fillImg *ebiten.Image
}

func NewCooldownIndicator(x, y, radius float32, label string, clr color.RGBA) *CooldownIndicator {
	return &CooldownIndicator{X: x, Y: y, Radius: radius, Label: label, Color: clr, ready: true}
}

// Progress — доля оставшейся перезарядки в [0, 1]
func Progress(remaining, total float64) float64 {
	if total <= 0 || remaining <= 0 {
		return 0
	}
	return math.Min(remaining/total, 1)
}

// Update запоминает момент, когда перезарядка закончилась
func (c *CooldownIndicator) Update(now, remaining float64) {
	ready := remaining <= 0
	if ready && !c.ready {
		c.readyAt = now
	}
	c.ready = ready
}

// Scale — текущий масштаб кружка
func (c *CooldownIndicator) Scale(now float64) float64 {
	if !c.ready {
		return 1
	}
	return 1.0 + 0.3*math.Exp(-(now-c.readyAt)*8)
}

// Draw отрисовывает индикатор
func (c *CooldownIndicator) Draw(screen *ebiten.Image, now, remaining, total float64) {
	r := c.Radius * float32(c.Scale(now))
	fill := c.Color
	if !c.ready {
		fill = render.DarkenColor(c.Color)
	}
	vector.DrawFilledCircle(screen, c.X, c.Y, r, fill, true)

	if p := Progress(remaining, total); p > 0 {
		var path vector.Path
		start := float32(-math.Pi / 2)
		path.MoveTo(c.X, c.Y)
		path.Arc(c.X, c.Y, r, start, start+float32(2*math.Pi*p), vector.Clockwise)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 0, 0, 0, 0.55
		}
		screen.DrawTriangles(vs, is, c.fill(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
	vector.StrokeCircle(screen, c.X, c.Y, r, 1.5, color.White, true)

	b := text.BoundString(render.Face, c.Label)
	text.Draw(screen, c.Label, render.Face, int(c.X)-b.Dx()/2, int(c.Y)+b.Dy()/2, color.White)
}

func (c *CooldownIndicator) fill() *ebiten.Image {
	if c.fillImg == nil {
		c.fillImg = ebiten.NewImage(1, 1)
		c.fillImg.Fill(color.White)
	}
	return c.fillImg
}
