// internal/system/combat.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
)

// CombatSystem разрешает попадания снарядов в игрока и во врагов
type CombatSystem struct {
	world      *entity.World
	drop       config.DropTuning
	rng        component.Roller
	dispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, drop config.DropTuning, rng component.Roller, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, drop: drop, rng: rng, dispatcher: dispatcher}
}

// Update проверяет попадания и удаляет израсходованные снаряды и мертвых врагов.
func (s *CombatSystem) Update() {
	s.resolvePlayerHits()
	s.resolveEnemyHits()
	s.world.Projectiles = entity.Filter(s.world.Projectiles, func(p *component.Projectile) bool { return !p.Consumed })
	s.world.Enemies = entity.Filter(s.world.Enemies, func(e *component.Actor) bool { return !e.Dead })
}

// resolvePlayerHits: в игрока попадают только вражеские снаряды, каждый не больше одного раза.
func (s *CombatSystem) resolvePlayerHits() {
	player := s.world.Player
	if player == nil {
		return
	}
	for _, p := range s.world.Projectiles {
		if p.Consumed || p.IsPlayer {
			continue
		}
		if utils.Distance(player.X, player.Y, p.X, p.Y) >= config.PlayerHitRadius {
			continue
		}
		p.Consumed = true
		out := player.TakeDamage(p.Damage, s.drop, s.rng)
		if out == component.OutcomeNone {
			continue
		}
		player.StartShake(s.world.Time)
		data := event.HitData{Target: player, Damage: p.Damage, Outcome: out}
		s.dispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: data})
		if out == component.OutcomeDied {
			s.dispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: data})
		}
	}
}

// resolveEnemyHits: снаряды игрока против врагов. Обычный снаряд расходуется на первом
// попадании, ульта летит дальше и может задеть нескольких врагов за кадр.
func (s *CombatSystem) resolveEnemyHits() {
	for _, p := range s.world.Projectiles {
		if !p.IsPlayer || p.Consumed {
			continue
		}
		for _, e := range s.world.Enemies {
			if e.Dead {
				continue
			}
			if utils.Distance(e.X, e.Y, p.X, p.Y) >= e.HitRadius() {
				continue
			}
			out := e.TakeDamage(p.Damage, s.drop, s.rng)
			if !p.Pierces() {
				p.Consumed = true
			}
			e.StartShake(s.world.Time)
			data := event.HitData{Target: e, Damage: p.Damage, Outcome: out}
			if out.Lethal() {
				s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
			} else {
				s.dispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: data})
			}
			if p.Consumed {
				break
			}
		}
	}
}
