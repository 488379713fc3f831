// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning — все балансные значения сессии. Длительности в секундах.
type Tuning struct {
	Player     PlayerTuning     `yaml:"player"`
	Projectile ProjectileTuning `yaml:"projectile"`
	Enemy      EnemyTuning      `yaml:"enemy"`
	Spawn      SpawnTuning      `yaml:"spawn"`
	Pickup     PickupTuning     `yaml:"pickup"`
	Ability    AbilityTuning    `yaml:"ability"`
	Drop       DropTuning       `yaml:"drop"`
}

type PlayerTuning struct {
	FireRate         float64 `yaml:"fire_rate"`
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BulletSize       float64 `yaml:"bullet_size"`
	BulletDamage     int     `yaml:"bullet_damage"`
	BuffBulletSize   float64 `yaml:"buff_bullet_size"`
	BuffBulletDamage int     `yaml:"buff_bullet_damage"`
	UltBulletSize    float64 `yaml:"ult_bullet_size"`
	UltBulletDamage  int     `yaml:"ult_bullet_damage"`
	UltBulletCount   int     `yaml:"ult_bullet_count"`
	UltSpread        float64 `yaml:"ult_spread"` // радианы между соседними пулями ульты
	UltFireRate      float64 `yaml:"ult_fire_rate"`
	KillsForBonus    int     `yaml:"kills_for_bonus"`
	BonusMaxHealth   int     `yaml:"bonus_max_health"`
}

type ProjectileTuning struct {
	Lifetime   float64 `yaml:"lifetime"`
	MaxBounces int     `yaml:"max_bounces"`
}

type EnemyTuning struct {
	Health           int     `yaml:"health"`
	FireHealth       int     `yaml:"fire_health"`
	WarmUp           float64 `yaml:"warm_up"`
	FirstWarmUp      float64 `yaml:"first_warm_up"`
	WanderMin        float64 `yaml:"wander_min"`
	WanderMax        float64 `yaml:"wander_max"`
	WanderRange      float64 `yaml:"wander_range"`
	SpawnPadding     float64 `yaml:"spawn_padding"`
	BulletSize       float64 `yaml:"bullet_size"`
	BulletDamage     int     `yaml:"bullet_damage"`
	FireBulletSize   float64 `yaml:"fire_bullet_size"`
	FireBulletDamage int     `yaml:"fire_bullet_damage"`
	Score            int     `yaml:"score"`
	FireScore        int     `yaml:"fire_score"`
}

type SpawnTuning struct {
	BaseCap       int     `yaml:"base_cap"`
	HardCap       int     `yaml:"hard_cap"`
	KillsPerStep  int     `yaml:"kills_per_step"`
	MaxDifficulty int     `yaml:"max_difficulty"`
	FireChance    float64 `yaml:"fire_chance"`
	FireDiffScale int     `yaml:"fire_difficulty_scale"`
	DelayMin      float64 `yaml:"delay_min"`
	DelayMax      float64 `yaml:"delay_max"`
}

type PickupTuning struct {
	Lifetime     float64 `yaml:"lifetime"`
	HealAmount   int     `yaml:"heal_amount"`
	BuffDuration float64 `yaml:"buff_duration"`
}

type AbilityTuning struct {
	UltDuration    float64 `yaml:"ult_duration"`
	UltCooldown    float64 `yaml:"ult_cooldown"`
	DashCooldown   float64 `yaml:"dash_cooldown"`
	DashDistance   float64 `yaml:"dash_distance"`
	DashEffectTime float64 `yaml:"dash_effect_time"`
	DashSegments   int     `yaml:"dash_segments"`
	DashJitter     float64 `yaml:"dash_jitter"`
}

// DropTuning — двухступенчатый бросок при смерти врага: первый бросок выше
// FirstThreshold ведёт ко второму, второй выше BuffThreshold даёт бафф вместо лечения.
type DropTuning struct {
	Sides          int `yaml:"sides"`
	FirstThreshold int `yaml:"first_threshold"`
	BuffThreshold  int `yaml:"buff_threshold"`
}

// DefaultTuning возвращает стандартный баланс
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			FireRate:         0.6,
			BulletSpeed:      6,
			BulletSize:       7,
			BulletDamage:     1,
			BuffBulletSize:   18,
			BuffBulletDamage: 2,
			UltBulletSize:    10,
			UltBulletDamage:  10,
			UltBulletCount:   3,
			UltSpread:        0.12,
			UltFireRate:      0.4,
			KillsForBonus:    10,
			BonusMaxHealth:   8,
		},
		Projectile: ProjectileTuning{
			Lifetime:   3.0,
			MaxBounces: 2,
		},
		Enemy: EnemyTuning{
			Health:           2,
			FireHealth:       4,
			WarmUp:           0.7,
			FirstWarmUp:      3.0,
			WanderMin:        0.6,
			WanderMax:        1.6,
			WanderRange:      400,
			SpawnPadding:     100,
			BulletSize:       6,
			BulletDamage:     1,
			FireBulletSize:   18,
			FireBulletDamage: 4,
			Score:            1,
			FireScore:        3,
		},
		Spawn: SpawnTuning{
			BaseCap:       3,
			HardCap:       12,
			KillsPerStep:  10,
			MaxDifficulty: 10,
			FireChance:    0.05,
			FireDiffScale: 10,
			DelayMin:      0.15,
			DelayMax:      0.43,
		},
		Pickup: PickupTuning{
			Lifetime:     5.0,
			HealAmount:   1,
			BuffDuration: 10,
		},
		Ability: AbilityTuning{
			UltDuration:    15,
			UltCooldown:    60,
			DashCooldown:   1.3,
			DashDistance:   180,
			DashEffectTime: 0.26,
			DashSegments:   28,
			DashJitter:     12,
		},
		Drop: DropTuning{
			Sides:          10,
			FirstThreshold: 5,
			BuffThreshold:  6,
		},
	}
}

// ErrInvalidTuning оборачивается каждой ошибкой валидации
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate отклоняет значения, с которыми симуляция не может работать
func (t Tuning) Validate() error {
	switch {
	case t.Player.FireRate <= 0 || t.Player.UltFireRate <= 0:
		return fmt.Errorf("%w: fire rates must be positive", ErrInvalidTuning)
	case t.Player.UltBulletCount < 1:
		return fmt.Errorf("%w: ult bullet count must be at least 1", ErrInvalidTuning)
	case t.Projectile.Lifetime <= 0 || t.Projectile.MaxBounces < 0:
		return fmt.Errorf("%w: projectile lifetime/bounces out of range", ErrInvalidTuning)
	case t.Spawn.BaseCap < 1 || t.Spawn.HardCap < t.Spawn.BaseCap:
		return fmt.Errorf("%w: spawn caps must satisfy 1 <= base <= hard", ErrInvalidTuning)
	case t.Spawn.KillsPerStep < 1:
		return fmt.Errorf("%w: kills_per_step must be positive", ErrInvalidTuning)
	case t.Spawn.DelayMax < t.Spawn.DelayMin || t.Enemy.WanderMax < t.Enemy.WanderMin:
		return fmt.Errorf("%w: min/max ranges are inverted", ErrInvalidTuning)
	case t.Drop.Sides < 1:
		return fmt.Errorf("%w: drop roll needs at least one side", ErrInvalidTuning)
	case t.Ability.UltDuration <= 0 || t.Ability.UltCooldown < 0 || t.Ability.DashCooldown < 0:
		return fmt.Errorf("%w: ability durations out of range", ErrInvalidTuning)
	}
	return nil
}

// LoadTuning читает YAML поверх DefaultTuning. Отсутствующие в файле ключи сохраняют
// значения по умолчанию.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}
