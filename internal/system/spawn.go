// internal/system/spawn.go
package system

import (
	"log/slog"
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/utils"
)

// SpawnSystem поддерживает число врагов на уровне, зависящем от количества убийств
type SpawnSystem struct {
	world     *entity.World
	tuning    config.Tuning
	rng       *utils.PRNGService
	scheduler *Scheduler
	bounds    component.Bounds
	fm        float64
}

func NewSpawnSystem(world *entity.World, tuning config.Tuning, rng *utils.PRNGService, scheduler *Scheduler, bounds component.Bounds) *SpawnSystem {
	return &SpawnSystem{world: world, tuning: tuning, rng: rng, scheduler: scheduler, bounds: bounds, fm: 1}
}

// SetFrameMultiplier задает множитель скорости для новых врагов
func (s *SpawnSystem) SetFrameMultiplier(fm float64) {
	s.fm = fm
}

// Cap — сколько врагов может быть на поле при данном числе убийств
func (s *SpawnSystem) Cap(kills int) int {
	return min(s.tuning.Spawn.BaseCap+kills/s.tuning.Spawn.KillsPerStep, s.tuning.Spawn.HardCap)
}

// Difficulty — уровень сложности при данном числе убийств
func (s *SpawnSystem) Difficulty(kills int) int {
	return min(kills/s.tuning.Spawn.KillsPerStep, s.tuning.Spawn.MaxDifficulty)
}

// Spawn вызывается при старте сессии (kills == 0) и после каждого убийства.
// Первый враг появляется сразу, остальные добираются до лимита с небольшими задержками;
// лимит проверяется повторно в момент появления.
func (s *SpawnSystem) Spawn(kills int) {
	if kills == 0 {
		s.CreateEnemy(component.VariantDefault, 1, true)
		return
	}
	limit := s.Cap(kills)
	missing := limit - s.world.LiveEnemies()
	for i := 0; i < missing; i++ {
		delay := s.rng.Range(s.tuning.Spawn.DelayMin, s.tuning.Spawn.DelayMax)
		s.scheduler.At(s.world.Time+delay, func() {
			if s.world.LiveEnemies() >= limit {
				return
			}
			variant := component.VariantDefault
			difficulty := s.Difficulty(kills)
			if s.rng.Chance(s.tuning.Spawn.FireChance) {
				variant = component.VariantFire
				difficulty *= s.tuning.Spawn.FireDiffScale
			}
			s.CreateEnemy(variant, difficulty, false)
		})
	}
}

// CreateEnemy создает врага в случайной точке с параметрами, растущими со сложностью.
// Возвращает nil, если достигнут абсолютный лимит врагов.
func (s *SpawnSystem) CreateEnemy(variant string, difficulty int, first bool) *component.Actor {
	if s.world.LiveEnemies() >= s.tuning.Spawn.HardCap {
		return nil
	}
	et := s.tuning.Enemy
	pad := et.SpawnPadding
	x := pad + s.rng.Float64()*(config.ScreenWidth-2*pad)
	y := pad + s.rng.Float64()*(config.ScreenHeight-2*pad)

	m := math.Min(1+float64(difficulty)*0.1, 2.5)
	fm := s.fm
	var bulletSpeed, fireRate, moveSpeed float64
	e := &component.Actor{
		Kind:      component.KindEnemy,
		Variant:   variant,
		Position:  component.Position{X: x, Y: y},
		Width:     config.ActorWidth,
		Height:    config.ActorHeight,
		Health:    et.Health,
		MaxHealth: et.Health,
	}
	if variant == component.VariantFire {
		bulletSpeed = 2 * fm
		fireRate = 0.8
		moveSpeed = 5 * fm
		e.Width += config.FireVariantExtraW
		e.Height += config.FireVariantExtraH
		e.Health, e.MaxHealth = et.FireHealth, et.FireHealth
		e.BulletSize, e.BulletDamage = et.FireBulletSize, et.FireBulletDamage
		e.BulletColor = config.FireBulletColor
		e.Sprite = config.SpriteFireEnemy
	} else {
		bulletSpeed = math.Min(s.rng.Range(1.2, 2.2)*fm*m, 4)
		fireRate = math.Max(s.rng.Range(2.5, 4.0)/m, 0.8)
		moveSpeed = math.Min(s.rng.Range(0.3, 0.7)*fm*m, 1.5)
		e.BulletSize, e.BulletDamage = et.BulletSize, et.BulletDamage
		e.BulletColor = config.EnemyBulletColors[s.rng.Intn(len(config.EnemyBulletColors))]
		e.Sprite = config.EnemySprites[s.rng.Intn(len(config.EnemySprites))]
	}
	e.BulletSpeed = bulletSpeed
	e.FireRate, e.BaseFireRate = fireRate, fireRate
	e.LastShot = s.world.Time - fireRate

	warmUp := et.WarmUp
	if first {
		warmUp += et.FirstWarmUp
	}
	e.AI = &component.EnemyAI{
		TargetX:    x,
		TargetY:    y,
		NextWander: s.world.Time + s.rng.Range(et.WanderMin, et.WanderMax),
		MoveSpeed:  moveSpeed,
		SpawnTime:  s.world.Time,
		WarmUp:     warmUp,
	}
	s.world.AddEnemy(e)
	slog.Debug("enemy spawned", "variant", variant, "difficulty", difficulty, "x", x, "y", y)
	return e
}
