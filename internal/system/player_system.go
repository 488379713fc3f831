// internal/system/player_system.go
package system

import (
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
)

// ShotProfile — параметры одного залпа игрока
type ShotProfile struct {
	Type   component.ProjectileType
	Size   float64
	Damage int
	Count  int
	Spread float64
}

// PlayerSystem отвечает за движение, прицеливание и стрельбу игрока,
// а также за бонус к здоровью после набора убийств.
type PlayerSystem struct {
	world      *entity.World
	tuning     config.PlayerTuning
	bounds     component.Bounds
	stats      *component.GameStat
	dispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, tuning config.PlayerTuning, bounds component.Bounds, stats *component.GameStat, dispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{world: world, tuning: tuning, bounds: bounds, stats: stats, dispatcher: dispatcher}
}

// Profile выбирает параметры выстрела: ульта важнее баффа, бафф важнее обычного.
func (s *PlayerSystem) Profile(ultActive, buffed bool) ShotProfile {
	switch {
	case ultActive:
		return ShotProfile{Type: component.ProjectileUlt, Size: s.tuning.UltBulletSize, Damage: s.tuning.UltBulletDamage, Count: s.tuning.UltBulletCount, Spread: s.tuning.UltSpread}
	case buffed:
		return ShotProfile{Type: component.ProjectilePlayer, Size: s.tuning.BuffBulletSize, Damage: s.tuning.BuffBulletDamage, Count: 1}
	default:
		return ShotProfile{Type: component.ProjectilePlayer, Size: s.tuning.BulletSize, Damage: s.tuning.BulletDamage, Count: 1}
	}
}

// Update двигает игрока по вводу, поворачивает к курсору и стреляет, если разрешает кулдаун.
func (s *PlayerSystem) Update(in component.Input, fm float64, ultActive bool) {
	p := s.world.Player
	if p == nil || p.Dead {
		return
	}
	now := s.world.Time

	ax, ay := in.Axis()
	if ax != 0 || ay != 0 {
		startX, startY := p.X, p.Y
		p.MoveTo(p.X+ax*p.Speed*fm, p.Y+ay*p.Speed*fm, s.bounds)
		dx, dy := p.X-startX, p.Y-startY
		if math.Abs(dx) > 0.001 || math.Abs(dy) > 0.001 {
			s.world.LastMoveX, s.world.LastMoveY = utils.Normalize(dx, dy)
		}
	}

	p.Angle = math.Atan2(in.PointerY-p.Y, in.PointerX-p.X)

	if in.Fire && p.CanShoot(now) {
		s.fire(p, s.Profile(ultActive, p.Buffed), fm)
		p.LastShot = now
	}
}

func (s *PlayerSystem) fire(p *component.Actor, prof ShotProfile, fm float64) {
	bx := p.X + math.Cos(p.Angle)*config.BarrelSize
	by := p.Y + math.Sin(p.Angle)*config.BarrelSize
	speed := s.tuning.BulletSpeed * fm
	for i := 0; i < prof.Count; i++ {
		angle := p.Angle + (float64(i)-float64(prof.Count-1)/2)*prof.Spread
		s.world.AddProjectile(&component.Projectile{
			Position:  component.Position{X: bx, Y: by},
			Velocity:  component.Velocity{VX: math.Cos(angle) * speed, VY: math.Sin(angle) * speed},
			SpawnTime: s.world.Time,
			Size:      prof.Size,
			Damage:    prof.Damage,
			IsPlayer:  true,
			Type:      prof.Type,
			Color:     p.BulletColor,
		})
	}
	s.dispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotData{Type: prof.Type, Count: prof.Count}})
}

// OnEvent поднимает максимум здоровья игрока, когда счетчик убийств превышает порог.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	p := s.world.Player
	if p == nil || s.stats == nil {
		return
	}
	if s.stats.KillCount > s.tuning.KillsForBonus && p.MaxHealth < s.tuning.BonusMaxHealth {
		p.SetMaxHealth(s.tuning.BonusMaxHealth)
	}
}
