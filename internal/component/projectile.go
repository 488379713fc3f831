// internal/component/projectile.go
package component

import "image/color"

// ProjectileType — тип снаряда
type ProjectileType string

const (
	ProjectilePlayer  ProjectileType = "player"
	ProjectileUlt     ProjectileType = "ult"
	ProjectileFire    ProjectileType = "fire"
	ProjectileDefault ProjectileType = "default"
)

// TrailPoint — точка шлейфа ульты
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}

// Projectile представляет летящий снаряд. Скорость задается при создании и больше не меняется,
// кроме отражений от стен.
type Projectile struct {
	Position
	Velocity
	SpawnTime float64
	Bounces   int
	Size      float64
	Damage    int
	IsPlayer  bool
	Type      ProjectileType
	Color     color.RGBA
	Consumed  bool
	Trail     []TrailPoint
}

// Expired: снаряд живет дольше lifetime или отразился больше maxBounces раз
func (p *Projectile) Expired(now, lifetime float64, maxBounces int) bool {
	return now-p.SpawnTime > lifetime || p.Bounces > maxBounces
}

// Pierces — ульта пробивает врагов насквозь
func (p *Projectile) Pierces() bool {
	return p.Type == ProjectileUlt
}
