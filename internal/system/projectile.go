// internal/system/projectile.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/pkg/gridmap"
)

// ProjectileSystem управляет движением снарядов и отражением от стен
type ProjectileSystem struct {
	world  *entity.World
	grid   *gridmap.Grid
	tuning config.ProjectileTuning
}

func NewProjectileSystem(world *entity.World, grid *gridmap.Grid, tuning config.ProjectileTuning) *ProjectileSystem {
	return &ProjectileSystem{world: world, grid: grid, tuning: tuning}
}

// Update удаляет истекшие снаряды и продвигает оставшиеся на один кадр
func (s *ProjectileSystem) Update() {
	now := s.world.Time
	s.world.Projectiles = entity.Filter(s.world.Projectiles, func(p *component.Projectile) bool {
		return !p.Consumed && !p.Expired(now, s.tuning.Lifetime, s.tuning.MaxBounces)
	})
	for _, p := range s.world.Projectiles {
		s.Advance(p)
	}
}

// Advance сдвигает снаряд на его скорость. Переход в клетку-стену отражает ту ось,
// индекс клетки по которой изменился, и возвращает снаряд к prev - v.
// Снаряд, исчерпавший лимит отражений, проходит сквозь стены.
func (s *ProjectileSystem) Advance(p *component.Projectile) {
	prevX, prevY := p.X, p.Y
	p.X += p.VX
	p.Y += p.VY

	if p.Type == component.ProjectileUlt {
		pushTrail(p)
	}

	if p.Bounces >= s.tuning.MaxBounces {
		return
	}
	prev := s.grid.CellAt(prevX, prevY)
	next := s.grid.CellAt(p.X, p.Y)
	if !s.grid.IsWall(next) {
		return
	}
	if next.X != prev.X {
		p.VX = -p.VX
	}
	if next.Y != prev.Y {
		p.VY = -p.VY
	}
	p.Bounces++
	p.X = prevX - p.VX
	p.Y = prevY - p.VY
}

// pushTrail добавляет текущую позицию в начало шлейфа и гасит старые точки
func pushTrail(p *component.Projectile) {
	p.Trail = append([]component.TrailPoint{{X: p.X, Y: p.Y, Alpha: 0.5}}, p.Trail...)
	if len(p.Trail) > config.UltTrailLength {
		p.Trail = p.Trail[:config.UltTrailLength]
	}
	for i := range p.Trail {
		p.Trail[i].Alpha *= config.UltTrailFade
	}
}
