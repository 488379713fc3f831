// internal/ui/health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 4
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// HealthCell — состояние одного кружка индикатора
type HealthCell int

const (
	CellEmpty HealthCell = iota
	CellLow
	CellExtra
)

// HealthCells раскладывает здоровье по кружкам: пока здоровья не больше половины, все
// полные кружки красные, иначе "избыток" сверх половины синий.
func HealthCells(health, maxHealth int) []HealthCell {
	cells := make([]HealthCell, max(maxHealth, 0))
	half := maxHealth / 2
	for j := range cells {
		switch {
		case j >= health:
			cells[j] = CellEmpty
		case health > half && j < health-half:
			cells[j] = CellExtra
		default:
			cells[j] = CellLow
		}
	}
	return cells
}

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float64
}

func NewPlayerHealthIndicator(x, y float64) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

var cellColors = map[HealthCell]color.RGBA{
	CellEmpty: {0, 0, 0, 255},
	CellLow:   {230, 40, 40, 255},
	CellExtra: {40, 90, 230, 255},
}

// Draw рисует индикатор здоровья игрока.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	step := HealthCircleRadius*2 + HealthCircleSpacing
	for j, c := range HealthCells(health, maxHealth) {
		x := i.X + float64(j%HealthCols)*step + HealthCircleRadius
		y := i.Y + float64(j/HealthCols)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, float32(x), float32(y), HealthCircleRadius, cellColors[c], true)
		vector.StrokeCircle(screen, float32(x), float32(y), HealthCircleRadius, 1, color.White, true)
	}
}
