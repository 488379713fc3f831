// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-shooter/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float64
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Selected   bool
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float64, label string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:       label,
		TextColor:  color.RGBA{20, 20, 30, 255},
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{160, 160, 160, 255},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// IsClicked проверяет, был ли в этом кадре клик по кнопке.
func (b *Button) IsClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	border := color.RGBA{90, 90, 90, 255}
	if b.Selected {
		border = color.RGBA{255, 200, 0, 255}
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, border, false)

	bounds := text.BoundString(render.Face, b.Text)
	tx := int(b.X + (b.W-float64(bounds.Dx()))/2)
	ty := int(b.Y + (b.H+float64(bounds.Dy()))/2)
	text.Draw(screen, b.Text, render.Face, tx, ty, b.TextColor)
}
