package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

func playerFixture() (*entity.World, *PlayerSystem, *component.GameStat, *recorder) {
	w := entity.NewWorld()
	w.Player = &component.Actor{
		Kind:         component.KindPlayer,
		Position:     component.Position{X: 500, Y: 500},
		Width:        config.ActorWidth,
		Height:       config.ActorHeight,
		Speed:        2,
		Health:       5,
		MaxHealth:    5,
		FireRate:     0.6,
		BaseFireRate: 0.6,
		LastShot:     -0.6,
	}
	stats := &component.GameStat{}
	d := event.NewDispatcher()
	rec := newRecorder(d, event.ShotFired)
	bounds := component.ArenaBounds(config.ScreenWidth, config.ScreenHeight, config.ArenaMargin)
	return w, NewPlayerSystem(w, config.DefaultTuning().Player, bounds, stats, d), stats, rec
}

func TestPlayerMovesAndRemembersDirection(t *testing.T) {
	w, ps, _, _ := playerFixture()
	ps.Update(component.Input{Right: true, Down: true, PointerX: 600, PointerY: 500}, 1.5, false)
	assert.Equal(t, 503.0, w.Player.X)
	assert.Equal(t, 503.0, w.Player.Y)
	assert.InDelta(t, math.Sqrt2/2, w.LastMoveX, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, w.LastMoveY, 1e-9)

	ps.Update(component.Input{PointerX: 600, PointerY: 503}, 1, false)
	assert.InDelta(t, math.Sqrt2/2, w.LastMoveX, 1e-9, "idle frames keep the last direction")
	assert.InDelta(t, 0, w.Player.Angle, 1e-9)
}

func TestPlayerClampedToArena(t *testing.T) {
	w, ps, _, _ := playerFixture()
	w.Player.X = 46
	ps.Update(component.Input{Left: true}, 1, false)
	assert.Equal(t, config.ArenaMargin, w.Player.X)
}

func TestShotProfiles(t *testing.T) {
	w, ps, _, rec := playerFixture()
	in := component.Input{Fire: true, PointerX: 600, PointerY: 500}

	ps.Update(in, 1, false)
	require.Len(t, w.Projectiles, 1)
	p := w.Projectiles[0]
	assert.Equal(t, 7.0, p.Size)
	assert.Equal(t, 1, p.Damage)
	assert.Equal(t, 500+config.BarrelSize, p.X)
	assert.True(t, p.IsPlayer)

	ps.Update(in, 1, false)
	assert.Len(t, w.Projectiles, 1, "fire rate blocks the second shot")

	w.Time = 0.6
	w.Player.Buffed = true
	ps.Update(in, 1, false)
	require.Len(t, w.Projectiles, 2)
	assert.Equal(t, 18.0, w.Projectiles[1].Size)
	assert.Equal(t, 2, w.Projectiles[1].Damage)

	w.Time = 1.3
	ps.Update(in, 1, true)
	require.Len(t, w.Projectiles, 5)
	for _, p := range w.Projectiles[2:] {
		assert.Equal(t, component.ProjectileUlt, p.Type)
		assert.Equal(t, 10, p.Damage)
	}
	assert.Equal(t, 3, rec.count(event.ShotFired))
}

func TestBonusMaxHealthAfterKills(t *testing.T) {
	w, ps, stats, _ := playerFixture()
	stats.KillCount = 10
	ps.OnEvent(event.Event{Type: event.EnemyKilled})
	assert.Equal(t, 5, w.Player.MaxHealth)

	stats.KillCount = 11
	ps.OnEvent(event.Event{Type: event.EnemyKilled})
	assert.Equal(t, 8, w.Player.MaxHealth)
	assert.Equal(t, 5, w.Player.Health)
}
