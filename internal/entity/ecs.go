// internal/entity/ecs.go
package entity

import "go-arena-shooter/internal/component"

// World — все изменяемые коллекции одной игровой сессии. Сущности создаются во время
// игры и удаляются циклом (смерть, истечение срока) или все сразу в Clear.
type World struct {
	Time        float64 // время сессии в секундах
	Player      *component.Actor
	Enemies     []*component.Actor
	Projectiles []*component.Projectile
	Pickups     []*component.Pickup
	Dashes      []*component.DashEffect
	Particles   []*component.Particle
	Explosions  []*component.Explosion

	// последний ненулевой вектор движения игрока (единичный)
	LastMoveX, LastMoveY float64
}

func NewWorld() *World {
	return &World{}
}

// Clear удаляет все сущности и сбрасывает время
func (w *World) Clear() {
	*w = World{}
}

func (w *World) AddEnemy(e *component.Actor) {
	w.Enemies = append(w.Enemies, e)
}

func (w *World) AddProjectile(p *component.Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

func (w *World) AddPickup(p *component.Pickup) {
	w.Pickups = append(w.Pickups, p)
}

// LiveEnemies — число врагов, которые еще не умерли
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if !e.Dead {
			n++
		}
	}
	return n
}

// Filter оставляет в срезе только элементы, для которых keep вернул true.
// Фильтрация идет на месте, хвост обнуляется, чтобы не держать ссылки.
func Filter[T any](s []*T, keep func(*T) bool) []*T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	for i := len(out); i < len(s); i++ {
		s[i] = nil
	}
	return out
}
