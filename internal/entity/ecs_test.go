package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-arena-shooter/internal/component"
)

func TestFilterKeepsOrder(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.AddProjectile(&component.Projectile{Damage: i})
	}
	w.Projectiles = Filter(w.Projectiles, func(p *component.Projectile) bool { return p.Damage%2 == 0 })

	var got []int
	for _, p := range w.Projectiles {
		got = append(got, p.Damage)
	}
	assert.Equal(t, []int{0, 2, 4}, got)
}

func TestClear(t *testing.T) {
	w := NewWorld()
	w.Time = 12
	w.Player = &component.Actor{Kind: component.KindPlayer}
	w.AddEnemy(&component.Actor{Kind: component.KindEnemy})
	w.AddPickup(&component.Pickup{})
	w.Clear()

	assert.Nil(t, w.Player)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Pickups)
	assert.Zero(t, w.Time)
}

func TestLiveEnemies(t *testing.T) {
	w := NewWorld()
	w.AddEnemy(&component.Actor{})
	w.AddEnemy(&component.Actor{Dead: true})
	assert.Equal(t, 1, w.LiveEnemies())
}
