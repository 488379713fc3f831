// pkg/render/hud.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD is the snapshot of session counters shown on top of the arena.
type HUD struct {
	Health        int
	MaxHealth     int
	Kills         int
	Score         int
	BuffRemaining float64
	UltActive     bool
	UltRemaining  float64
	UltCooldown   float64
	DashCooldown  float64
	SoundEnabled  bool
	Volume        int
}

// Lines renders the HUD as text rows, top to bottom.
func (h HUD) Lines() []string {
	lines := []string{
		fmt.Sprintf("HP %d/%d", h.Health, h.MaxHealth),
		fmt.Sprintf("Kills %d  Score %d", h.Kills, h.Score),
	}
	if h.BuffRemaining > 0 {
		lines = append(lines, fmt.Sprintf("Buff %.0fs", h.BuffRemaining))
	}
	switch {
	case h.UltActive:
		lines = append(lines, fmt.Sprintf("ULT %.0fs", h.UltRemaining))
	case h.UltCooldown > 0:
		lines = append(lines, fmt.Sprintf("Ult ready in %.0fs", h.UltCooldown))
	default:
		lines = append(lines, "Ult ready [R]")
	}
	if h.DashCooldown > 0 {
		lines = append(lines, fmt.Sprintf("Dash %.1fs", h.DashCooldown))
	} else {
		lines = append(lines, "Dash ready [Q]")
	}
	if h.SoundEnabled {
		lines = append(lines, fmt.Sprintf("Sound %d%%", h.Volume))
	} else {
		lines = append(lines, "Sound off [M]")
	}
	return lines
}

// Face is the font used for all in-game text.
var Face font.Face = basicfont.Face7x13

const lineHeight = 16

// DrawHUD draws the HUD panel in the top-left corner.
func DrawHUD(screen *ebiten.Image, h HUD, colors ArenaColors) {
	lines := h.Lines()
	vector.DrawFilledRect(screen, 8, 8, 170, float32(len(lines)*lineHeight+10), colors.Overlay, false)
	for i, l := range lines {
		text.Draw(screen, l, Face, 16, 24+i*lineHeight, colors.TextLight)
	}
}

// DrawCentered draws a line of text horizontally centered at height y.
func DrawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	b := text.BoundString(Face, s)
	x := (screen.Bounds().Dx() - b.Dx()) / 2
	text.Draw(screen, s, Face, x, y, clr)
}

// DrawOverlay dims the whole screen.
func DrawOverlay(screen *ebiten.Image, colors ArenaColors) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colors.Overlay, false)
}
