// internal/system/enemy_ai.go
package system

import (
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/utils"
)

// EnemyAISystem — блуждание врагов и стрельба по игроку
type EnemyAISystem struct {
	world  *entity.World
	tuning config.EnemyTuning
	rng    *utils.PRNGService
	bounds component.Bounds
}

func NewEnemyAISystem(world *entity.World, tuning config.EnemyTuning, rng *utils.PRNGService, bounds component.Bounds) *EnemyAISystem {
	return &EnemyAISystem{world: world, tuning: tuning, rng: rng, bounds: bounds}
}

// Update обновляет всех живых врагов
func (s *EnemyAISystem) Update() {
	player := s.world.Player
	if player == nil {
		return
	}
	// список может пополниться новыми снарядами, но не врагами
	for _, e := range s.world.Enemies {
		if e.Dead || e.AI == nil {
			continue
		}
		s.step(e, player)
	}
}

func (s *EnemyAISystem) step(e, player *component.Actor) {
	now := s.world.Time
	ai := e.AI

	e.Angle = math.Atan2(player.Y-e.Y, player.X-e.X)

	if now > ai.NextWander {
		tx := e.X + (s.rng.Float64()-0.5)*s.tuning.WanderRange
		ty := e.Y + (s.rng.Float64()-0.5)*s.tuning.WanderRange
		ai.TargetX, ai.TargetY = s.bounds.Clamp(tx, ty)
		ai.NextWander = now + s.rng.Range(s.tuning.WanderMin, s.tuning.WanderMax)
	}

	f := utils.Clamp(ai.MoveSpeed*0.01, 0, 1)
	e.MoveTo(utils.Lerp(e.X, ai.TargetX, f), utils.Lerp(e.Y, ai.TargetY, f), s.bounds)

	if ai.Armed(now) && e.CanShoot(now) {
		s.shoot(e)
		e.LastShot = now
	}
}

func (s *EnemyAISystem) shoot(e *component.Actor) {
	typ := component.ProjectileDefault
	if e.Variant == component.VariantFire {
		typ = component.ProjectileFire
	}
	s.world.AddProjectile(&component.Projectile{
		Position: component.Position{
			X: e.X + math.Cos(e.Angle)*config.BarrelSize,
			Y: e.Y + math.Sin(e.Angle)*config.BarrelSize,
		},
		Velocity:  component.Velocity{VX: math.Cos(e.Angle) * e.BulletSpeed, VY: math.Sin(e.Angle) * e.BulletSpeed},
		SpawnTime: s.world.Time,
		Size:      e.BulletSize,
		Damage:    e.BulletDamage,
		Type:      typ,
		Color:     e.BulletColor,
	})
}
