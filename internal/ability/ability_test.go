package ability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/utils"
)

const frame = 1.0 / 60

func newPlayer() *component.Actor {
	return &component.Actor{
		Kind:         component.KindPlayer,
		Position:     component.Position{X: 500, Y: 500},
		Health:       5,
		MaxHealth:    5,
		FireRate:     0.6,
		BaseFireRate: 0.6,
	}
}

// advance прогоняет кадры по 1/60 секунды
func advance(seconds float64, step func(dt float64)) {
	for t := 0.0; t < seconds; t += frame {
		step(frame)
	}
}

func TestTimerFiresOnce(t *testing.T) {
	tm := NewTimer(0.5)
	assert.False(t, tm.Update(1), "stopped timer never fires")

	tm.Start()
	fired := 0
	advance(2, func(dt float64) {
		if tm.Update(dt) {
			fired++
		}
	})
	assert.Equal(t, 1, fired)
	assert.False(t, tm.Active())

	tm.Start()
	tm.Stop()
	tm.Stop()
	assert.False(t, tm.Update(1))
}

func TestUltimateLifecycle(t *testing.T) {
	tuning := config.DefaultTuning()
	u := NewUltimate(tuning)
	p := newPlayer()

	require.False(t, u.Activate(nil))
	require.True(t, u.Activate(p))
	assert.Equal(t, tuning.Player.UltFireRate, p.FireRate)
	sprite, scale, ok := u.WeaponOverride()
	assert.True(t, ok)
	assert.Equal(t, config.SpriteUltWeapon, sprite)
	assert.Equal(t, config.UltWeaponScale, scale)

	assert.False(t, u.Activate(p), "second activation while active is a no-op")

	advance(tuning.Ability.UltDuration+frame, func(dt float64) { u.Update(dt, p) })
	assert.False(t, u.Active())
	assert.True(t, u.CoolingDown())
	assert.Equal(t, p.BaseFireRate, p.FireRate)
	_, _, ok = u.WeaponOverride()
	assert.False(t, ok)

	p.FireRate = 0.6
	assert.False(t, u.Activate(p), "activation during cooldown is a no-op")
	assert.Equal(t, 0.6, p.FireRate)

	advance(tuning.Ability.UltCooldown+frame, func(dt float64) { u.Update(dt, p) })
	assert.False(t, u.CoolingDown())
	assert.True(t, u.Activate(p))
}

func TestUltimateReset(t *testing.T) {
	u := NewUltimate(config.DefaultTuning())
	p := newPlayer()
	require.True(t, u.Activate(p))

	u.Reset(p)
	u.Reset(p)
	assert.False(t, u.Active())
	assert.False(t, u.CoolingDown())
	assert.Equal(t, p.BaseFireRate, p.FireRate)
}

func TestBuffClearsAfterDuration(t *testing.T) {
	tuning := config.DefaultTuning()
	b := NewBuff(tuning)
	p := newPlayer()

	b.Start(p)
	require.True(t, p.Buffed)

	advance(tuning.Pickup.BuffDuration-1, func(dt float64) { b.Update(dt, p) })
	assert.True(t, p.Buffed)

	b.Start(p) // подбор второго баффа продлевает действие
	advance(tuning.Pickup.BuffDuration-0.5, func(dt float64) { b.Update(dt, p) })
	assert.True(t, p.Buffed)

	advance(1, func(dt float64) { b.Update(dt, p) })
	assert.False(t, p.Buffed)
	assert.False(t, b.Active())
}

func TestDashCooldown(t *testing.T) {
	tuning := config.DefaultTuning()
	d := NewDash(tuning)
	p := newPlayer()
	bounds := component.ArenaBounds(config.ScreenWidth, config.ScreenHeight, config.ArenaMargin)
	rng := utils.NewPRNGService(7)

	eff, ok := d.Try(1.0, p, 1, 0, bounds, rng)
	require.True(t, ok)
	assert.InDelta(t, 680, p.X, 1e-9)
	assert.InDelta(t, 500, p.Y, 1e-9)
	assert.Len(t, eff.Segments, tuning.Ability.DashSegments)
	assert.Equal(t, tuning.Ability.DashEffectTime, eff.Duration)
	for _, s := range eff.Segments {
		assert.InDelta(t, 500, s.Y1, tuning.Ability.DashJitter)
		assert.InDelta(t, 500, s.Y2, tuning.Ability.DashJitter)
	}

	eff, ok = d.Try(1.5, p, 1, 0, bounds, rng)
	assert.False(t, ok)
	assert.Nil(t, eff)
	assert.InDelta(t, 680, p.X, 1e-9, "second dash inside the cooldown does not move")

	_, ok = d.Try(1.0+tuning.Ability.DashCooldown+0.01, p, 1, 0, bounds, rng)
	assert.True(t, ok)
	assert.InDelta(t, 860, p.X, 1e-9)
}

func TestDashUsesFacingAndClamps(t *testing.T) {
	d := NewDash(config.DefaultTuning())
	p := newPlayer()
	p.X = 900
	p.Angle = 0
	bounds := component.ArenaBounds(config.ScreenWidth, config.ScreenHeight, config.ArenaMargin)

	_, ok := d.Try(0, p, 0, 0, bounds, utils.NewPRNGService(1))
	require.True(t, ok)
	assert.Equal(t, 955.0, p.X)
}
