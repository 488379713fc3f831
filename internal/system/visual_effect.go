// internal/system/visual_effect.go
package system

import (
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами: частицами, взрывами, следами рывка и тряской.
type VisualEffectSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng}
}

// SpawnDeathBurst разбрасывает частицы из точки смерти
func (s *VisualEffectSystem) SpawnDeathBurst(x, y float64) {
	for i := 0; i < config.ParticleCount; i++ {
		angle := 2*math.Pi*float64(i)/config.ParticleCount + s.rng.Float64()*0.5
		speed := s.rng.Range(2, 6)
		s.world.Particles = append(s.world.Particles, &component.Particle{
			Position: component.Position{X: x + (s.rng.Float64()-0.5)*10, Y: y + (s.rng.Float64()-0.5)*10},
			Velocity: component.Velocity{VX: math.Cos(angle) * speed, VY: math.Sin(angle) * speed},
			Size:     s.rng.Range(2, 5),
			Born:     s.world.Time,
			Lifetime: config.ParticleLifetime,
		})
	}
}

// SpawnExplosion запускает анимацию взрыва
func (s *VisualEffectSystem) SpawnExplosion(x, y float64) {
	s.world.Explosions = append(s.world.Explosions, &component.Explosion{
		Position: component.Position{X: x, Y: y},
		Frames:   config.ExplosionFrames,
		Size:     config.ExplosionSize,
	})
}

// AddDash добавляет след рывка
func (s *VisualEffectSystem) AddDash(d *component.DashEffect) {
	if d != nil {
		s.world.Dashes = append(s.world.Dashes, d)
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(fm float64) {
	now := s.world.Time

	s.world.Particles = entity.Filter(s.world.Particles, func(p *component.Particle) bool {
		if now-p.Born >= p.Lifetime {
			return false
		}
		p.X += p.VX * fm
		p.Y += p.VY * fm
		return true
	})

	s.world.Dashes = entity.Filter(s.world.Dashes, func(d *component.DashEffect) bool { return !d.Done(now) })

	step := int(math.Ceil(fm))
	s.world.Explosions = entity.Filter(s.world.Explosions, func(e *component.Explosion) bool {
		e.Frame += step
		return !e.Done()
	})

	if s.world.Player != nil {
		s.shake(s.world.Player, now)
	}
	for _, e := range s.world.Enemies {
		s.shake(e, now)
	}
}

// shake делает очередной шаг тряски раз в ShakeInterval
func (s *VisualEffectSystem) shake(a *component.Actor, now float64) {
	sh := &a.Shake
	if now < sh.NextStep {
		return
	}
	if sh.Steps == 0 {
		sh.DX, sh.DY = 0, 0
		return
	}
	sh.DX = (s.rng.Float64() - 0.5) * config.ShakeAmount
	sh.DY = (s.rng.Float64() - 0.5) * config.ShakeAmount
	sh.Steps--
	sh.NextStep = now + config.ShakeInterval
}
