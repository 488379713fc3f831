// internal/component/actor.go
package component

import (
	"image/color"

	"go-arena-shooter/internal/config"
)

// Kind — тег варианта актора
type Kind string

const (
	KindPlayer Kind = "main"
	KindEnemy  Kind = "enemy"
)

// Варианты врагов
const (
	VariantDefault = "default"
	VariantFire    = "fire"
)

// Outcome — результат применения урона
type Outcome int

const (
	OutcomeNone Outcome = iota // актор уже мертв
	OutcomeHit
	OutcomeDied
	OutcomeExplode
	OutcomeDropHeal
	OutcomeDropBuff
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeDied:
		return "died"
	case OutcomeExplode:
		return "explode"
	case OutcomeDropHeal:
		return "drop_heal"
	case OutcomeDropBuff:
		return "drop_buff"
	}
	return "none"
}

// Lethal сообщает, завершился ли удар смертью актора
func (o Outcome) Lethal() bool {
	return o == OutcomeDied || o == OutcomeExplode || o == OutcomeDropHeal || o == OutcomeDropBuff
}

// Roller — источник случайных бросков для таблицы дропа
type Roller interface {
	Intn(n int) int
}

// Shake — состояние тряски спрайта после попадания
type Shake struct {
	Steps    int     // сколько шагов осталось
	NextStep float64 // время сессии следующего шага
	DX, DY   float64
}

// Active сообщает, трясется ли спрайт сейчас
func (s Shake) Active() bool {
	return s.Steps > 0
}

// Actor — игрок или враг. Вариант определяется полем Kind, данные ИИ врага лежат в AI.
type Actor struct {
	Position
	Kind    Kind
	Variant string
	Sprite  string

	Angle         float64
	Width, Height float64
	Speed         float64

	Health    int
	MaxHealth int

	FireRate     float64 // секунды между выстрелами
	BaseFireRate float64
	LastShot     float64
	BulletSpeed  float64
	BulletSize   float64
	BulletDamage int
	BulletColor  color.RGBA

	Buffed bool
	Dead   bool
	Shake  Shake

	AI *EnemyAI
}

// IsPlayer — true для актора игрока
func (a *Actor) IsPlayer() bool {
	return a.Kind == KindPlayer
}

// HitRadius — радиус попадания для врагов, половина ширины спрайта
func (a *Actor) HitRadius() float64 {
	return a.Width / 2
}

// CanShoot проверяет кулдаун стрельбы
func (a *Actor) CanShoot(now float64) bool {
	return now-a.LastShot >= a.FireRate
}

// MoveTo перемещает актора и прижимает его к границам
func (a *Actor) MoveTo(x, y float64, b Bounds) {
	a.X, a.Y = b.Clamp(x, y)
}

// TakeDamage применяет урон. Смерть срабатывает ровно один раз: повторные удары по
// мертвому актору возвращают OutcomeNone. Для врага при смерти делается двухступенчатый
// бросок по таблице дропа.
func (a *Actor) TakeDamage(amount int, drop config.DropTuning, rng Roller) Outcome {
	if a.Dead {
		return OutcomeNone
	}
	if amount < 0 {
		amount = 0
	}
	a.Health -= amount
	if a.Health < 0 {
		a.Health = 0
	}
	if a.Health > a.MaxHealth {
		a.Health = a.MaxHealth
	}
	if a.Health > 0 {
		return OutcomeHit
	}
	a.Dead = true
	if a.IsPlayer() {
		return OutcomeDied
	}
	return DropRoll(drop, rng)
}

// DropRoll — таблица дропа врага: первый бросок выше FirstThreshold ведет ко второму,
// второй выше BuffThreshold дает бафф, иначе аптечку. Иначе враг просто взрывается.
func DropRoll(drop config.DropTuning, rng Roller) Outcome {
	if rng.Intn(drop.Sides) <= drop.FirstThreshold {
		return OutcomeExplode
	}
	if rng.Intn(drop.Sides) > drop.BuffThreshold {
		return OutcomeDropBuff
	}
	return OutcomeDropHeal
}

// Heal восстанавливает здоровье. Возвращает false, если здоровье уже полное.
func (a *Actor) Heal(amount int) bool {
	if a.Dead || a.Health >= a.MaxHealth {
		return false
	}
	a.Health += amount
	if a.Health > a.MaxHealth {
		a.Health = a.MaxHealth
	}
	return true
}

// SetMaxHealth меняет максимум здоровья, текущее значение остается в [0, max]
func (a *Actor) SetMaxHealth(max int) {
	a.MaxHealth = max
	if a.Health > max {
		a.Health = max
	}
}

// HealthFraction — доля оставшегося здоровья для полоски
func (a *Actor) HealthFraction() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return float64(a.Health) / float64(a.MaxHealth)
}

// StartShake запускает тряску спрайта
func (a *Actor) StartShake(now float64) {
	a.Shake = Shake{Steps: config.ShakeSteps, NextStep: now}
}
