// internal/ability/dash.go
package ability

import (
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
)

// Ranger — источник случайных чисел для разброса следа
type Ranger interface {
	Range(lo, hi float64) float64
}

// Dash — рывок игрока на фиксированное расстояние
type Dash struct {
	cfg     config.AbilityTuning
	lastUse float64
	used    bool
}

func NewDash(t config.Tuning) *Dash {
	return &Dash{cfg: t.Ability}
}

// Ready сообщает, прошла ли перезарядка к моменту now
func (d *Dash) Ready(now float64) bool {
	return !d.used || now-d.lastUse >= d.cfg.DashCooldown
}

// CooldownRemaining — сколько секунд до следующего рывка
func (d *Dash) CooldownRemaining(now float64) float64 {
	if d.Ready(now) {
		return 0
	}
	return d.cfg.DashCooldown - (now - d.lastUse)
}

// Try выполняет рывок по последнему ненулевому направлению движения (moveX, moveY),
// иначе по направлению взгляда. Возвращает эффект следа или false, если рывок на перезарядке.
func (d *Dash) Try(now float64, p *component.Actor, moveX, moveY float64, b component.Bounds, rng Ranger) (*component.DashEffect, bool) {
	if p == nil || p.Dead || !d.Ready(now) {
		return nil, false
	}
	d.lastUse = now
	d.used = true

	dirX, dirY := moveX, moveY
	if math.Abs(dirX) < 0.001 && math.Abs(dirY) < 0.001 {
		dirX, dirY = math.Cos(p.Angle), math.Sin(p.Angle)
	}
	dist := d.cfg.DashDistance
	startX, startY := p.X, p.Y
	p.MoveTo(startX+dirX*dist, startY+dirY*dist, b)

	perpX, perpY := -dirY, dirX
	segments := make([]component.Segment, 0, d.cfg.DashSegments)
	for i := 0; i < d.cfg.DashSegments; i++ {
		fStart := rng.Range(0, 0.9)
		fEnd := math.Min(1, fStart+rng.Range(0.06, 0.31))
		half := (fEnd - fStart) * dist / 2
		mid := (fStart + fEnd) * 0.5 * dist
		cx, cy := startX+dirX*mid, startY+dirY*mid
		off := rng.Range(-d.cfg.DashJitter, d.cfg.DashJitter)
		ox, oy := perpX*off, perpY*off
		segments = append(segments, component.Segment{
			X1:    cx - dirX*half + ox,
			Y1:    cy - dirY*half + oy,
			X2:    cx + dirX*half + ox,
			Y2:    cy + dirY*half + oy,
			Width: rng.Range(2, 5),
			Alpha: rng.Range(0.6, 0.9),
		})
	}
	return &component.DashEffect{Segments: segments, Start: now, Duration: d.cfg.DashEffectTime}, true
}

// Reset снимает перезарядку
func (d *Dash) Reset() {
	d.used = false
	d.lastUse = 0
}
