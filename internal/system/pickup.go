// internal/system/pickup.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
)

// PickupSystem управляет аптечками и баффами на поле
type PickupSystem struct {
	world      *entity.World
	tuning     config.PickupTuning
	dispatcher *event.Dispatcher
}

func NewPickupSystem(world *entity.World, tuning config.PickupTuning, dispatcher *event.Dispatcher) *PickupSystem {
	return &PickupSystem{world: world, tuning: tuning, dispatcher: dispatcher}
}

// Drop кладет предмет на поле
func (s *PickupSystem) Drop(kind component.PickupKind, x, y float64) *component.Pickup {
	p := &component.Pickup{
		Position:  component.Position{X: x, Y: y},
		Kind:      kind,
		SpawnTime: s.world.Time,
		Lifetime:  s.tuning.Lifetime,
	}
	s.world.AddPickup(p)
	return p
}

// Update подбирает предметы под игроком и удаляет истекшие. Аптечка подбирается только
// при неполном здоровье, иначе остается лежать до истечения срока.
func (s *PickupSystem) Update() {
	now := s.world.Time
	player := s.world.Player
	s.world.Pickups = entity.Filter(s.world.Pickups, func(p *component.Pickup) bool {
		if player != nil && !player.Dead && utils.Distance(player.X, player.Y, p.X, p.Y) < player.Width/2 {
			if s.collect(player, p) {
				return false
			}
		}
		return !p.Expired(now)
	})
}

func (s *PickupSystem) collect(player *component.Actor, p *component.Pickup) bool {
	switch p.Kind {
	case component.PickupHeal:
		if !player.Heal(s.tuning.HealAmount) {
			return false
		}
	case component.PickupBuff:
	default:
		return false
	}
	s.dispatcher.Dispatch(event.Event{Type: event.PickupCollected, Data: event.PickupData{Pickup: p}})
	return true
}
