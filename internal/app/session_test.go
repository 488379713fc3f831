package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-arena-shooter/internal/app/mocks"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/report"
	reportmocks "go-arena-shooter/internal/report/mocks"
	"go-arena-shooter/internal/sfx"
)

const frame = 0.05

// emptyArena запускает сессию и убирает стартового врага
func emptyArena(t *testing.T, opts Options) *Session {
	t.Helper()
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	s := NewSession(opts)
	s.Start()
	require.Len(t, s.World.Enemies, 1)
	s.World.Enemies = nil
	return s
}

// run продвигает сессию на целое число кадров
func run(s *Session, in component.Input, frames int) {
	for i := 0; i < frames; i++ {
		s.Tick(in, frame)
	}
}

// framesFor — сколько кадров покрывает seconds с запасом в один кадр
func framesFor(seconds float64) int {
	return int(math.Ceil(seconds/frame)) + 1
}

func enemyBullet(x, y float64) *component.Projectile {
	return &component.Projectile{
		Position: component.Position{X: x, Y: y},
		Size:     6,
		Damage:   1,
		Type:     component.ProjectileDefault,
	}
}

func TestStartPlacesPlayerAndFirstEnemy(t *testing.T) {
	s := NewSession(Options{Seed: 7})
	s.Start()

	p := s.World.Player
	require.NotNil(t, p)
	assert.Equal(t, 500.0, p.X)
	assert.Equal(t, 500.0, p.Y)
	assert.Equal(t, config.Characters[0].Health, p.Health)
	assert.True(t, p.CanShoot(0))
	assert.Equal(t, component.PhasePlaying, s.Phase)
	require.Len(t, s.World.Enemies, 1)
	ai := s.World.Enemies[0].AI
	assert.InDelta(t, s.Tuning.Enemy.WarmUp+s.Tuning.Enemy.FirstWarmUp, ai.WarmUp, 1e-9)
}

func TestPlayerDeathReportedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	rep := reportmocks.NewMockReporter(ctrl)
	rep.EXPECT().Report(report.StageDeath, gomock.Any()).Times(1)

	s := emptyArena(t, Options{Reporter: rep})
	var overs int
	s.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { overs++ }))

	s.World.Player.Health = 1
	for i := 0; i < 3; i++ {
		s.World.AddProjectile(enemyBullet(500, 500))
	}
	s.Tick(component.Input{}, frame)

	assert.True(t, s.PlayerDead())
	assert.Equal(t, 0, s.World.Player.Health)
	assert.Empty(t, s.World.Projectiles, "every overlapping bullet is consumed")
	assert.Equal(t, 1, s.Stats.DamageTaken)

	run(s, component.Input{}, 18)
	assert.Equal(t, component.PhasePlaying, s.Phase)
	run(s, component.Input{}, 4)
	assert.Equal(t, component.PhaseGameOver, s.Phase)
	assert.Equal(t, 1, overs)

	s.Tick(component.Input{}, frame)
	assert.Equal(t, 1, overs)
}

func TestPointBlankKill(t *testing.T) {
	ctrl := gomock.NewController(t)
	rep := reportmocks.NewMockReporter(ctrl)
	rep.EXPECT().Report(report.StageKill, gomock.Any()).Do(func(_ report.Stage, st component.GameStat) {
		assert.Equal(t, 1, st.KillCount)
		assert.Equal(t, 1, st.TotalScore)
	}).Times(1)

	s := emptyArena(t, Options{Reporter: rep})
	e := s.SpawnSystem.CreateEnemy(component.VariantDefault, 1, false)
	require.NotNil(t, e)
	e.X, e.Y = 560, 500
	e.AI.TargetX, e.AI.TargetY = 560, 500
	e.Health = 1

	s.Tick(component.Input{Fire: true, PointerX: 600, PointerY: 500}, frame)

	assert.Empty(t, s.World.Enemies)
	assert.Empty(t, s.World.Projectiles, "bullet is spent on the kill")
	assert.Equal(t, 1, s.Stats.KillCount)
	assert.Equal(t, 1, s.Stats.DamageGiven)
	assert.Len(t, s.World.Explosions, 1)
	assert.Len(t, s.World.Particles, config.ParticleCount)

	run(s, component.Input{}, framesFor(s.Tuning.Spawn.DelayMax))
	assert.Equal(t, s.SpawnSystem.Cap(1), s.World.LiveEnemies())
}

func TestFireKillScoresMore(t *testing.T) {
	s := emptyArena(t, Options{})
	e := s.SpawnSystem.CreateEnemy(component.VariantFire, 10, false)
	require.NotNil(t, e)
	e.X, e.Y = 560, 500
	e.AI.TargetX, e.AI.TargetY = 560, 500
	e.Health = 1

	s.Tick(component.Input{Fire: true, PointerX: 600, PointerY: 500}, frame)

	assert.Equal(t, 1, s.Stats.FireKillCount)
	assert.Equal(t, s.Tuning.Enemy.FireScore, s.Stats.TotalScore)
}

func TestKillBonusRaisesMaxHealth(t *testing.T) {
	s := emptyArena(t, Options{})
	s.Stats.KillCount = s.Tuning.Player.KillsForBonus
	e := s.SpawnSystem.CreateEnemy(component.VariantDefault, 1, false)
	e.X, e.Y = 560, 500
	e.AI.TargetX, e.AI.TargetY = 560, 500
	e.Health = 1

	s.Tick(component.Input{Fire: true, PointerX: 600, PointerY: 500}, frame)

	assert.Equal(t, s.Tuning.Player.BonusMaxHealth, s.World.Player.MaxHealth)
}

func TestBuffExpiresAfterTenSeconds(t *testing.T) {
	s := emptyArena(t, Options{})
	s.PickupSystem.Drop(component.PickupBuff, 500, 500)

	s.Tick(component.Input{}, frame)
	require.True(t, s.World.Player.Buffed)
	assert.Equal(t, 1, s.Stats.BuffsTaken)
	assert.Empty(t, s.World.Pickups)

	run(s, component.Input{}, int((s.Tuning.Pickup.BuffDuration-1)/frame))
	assert.True(t, s.World.Player.Buffed)
	run(s, component.Input{}, framesFor(1))
	assert.False(t, s.World.Player.Buffed)
}

func TestHealAtFullHealthStaysUntilExpiry(t *testing.T) {
	s := emptyArena(t, Options{})
	s.PickupSystem.Drop(component.PickupHeal, 500, 500)

	s.Tick(component.Input{}, frame)
	require.Len(t, s.World.Pickups, 1)

	run(s, component.Input{}, framesFor(s.Tuning.Pickup.Lifetime))
	assert.Empty(t, s.World.Pickups)
	assert.Zero(t, s.Stats.HealsUsed)
}

func TestHealWhenHurt(t *testing.T) {
	s := emptyArena(t, Options{})
	s.World.Player.Health = 2
	s.PickupSystem.Drop(component.PickupHeal, 500, 500)

	s.Tick(component.Input{}, frame)

	assert.Equal(t, 3, s.World.Player.Health)
	assert.Equal(t, 1, s.Stats.HealsUsed)
	assert.Empty(t, s.World.Pickups)
}

func TestDashTwiceWithinCooldown(t *testing.T) {
	s := emptyArena(t, Options{})
	p := s.World.Player
	right := component.Input{Right: true, PointerX: 900, PointerY: 500}

	s.Tick(right, frame)
	x := p.X
	right.Dash = true
	s.Tick(right, frame)
	assert.InDelta(t, x+p.Speed+s.Tuning.Ability.DashDistance, p.X, 1e-9)
	assert.Len(t, s.World.Dashes, 1)

	x = p.X
	s.Tick(right, frame)
	assert.InDelta(t, x+p.Speed, p.X, 1e-9, "second dash inside the cooldown does nothing")
}

func TestUltimateDuringCooldownIsNoop(t *testing.T) {
	s := emptyArena(t, Options{})
	p := s.World.Player

	s.Tick(component.Input{Ultimate: true}, frame)
	require.True(t, s.Ultimate.Active())
	assert.Equal(t, s.Tuning.Player.UltFireRate, p.FireRate)
	sprite, scale, ok := s.WeaponOverride()
	assert.True(t, ok)
	assert.Equal(t, config.SpriteUltWeapon, sprite)
	assert.Equal(t, config.UltWeaponScale, scale)

	run(s, component.Input{}, framesFor(s.Tuning.Ability.UltDuration))
	require.False(t, s.Ultimate.Active())
	require.True(t, s.Ultimate.CoolingDown())
	assert.Equal(t, p.BaseFireRate, p.FireRate)
	_, _, ok = s.WeaponOverride()
	assert.False(t, ok)

	s.Tick(component.Input{Ultimate: true}, frame)
	assert.False(t, s.Ultimate.Active())
}

func TestUltimateFiresPiercingFan(t *testing.T) {
	s := emptyArena(t, Options{})
	s.Tick(component.Input{Ultimate: true}, frame)
	s.World.Player.LastShot = -10

	s.Tick(component.Input{Fire: true, PointerX: 900, PointerY: 500}, frame)

	require.Len(t, s.World.Projectiles, s.Tuning.Player.UltBulletCount)
	for _, pr := range s.World.Projectiles {
		assert.Equal(t, component.ProjectileUlt, pr.Type)
		assert.True(t, pr.Pierces())
	}
}

func TestSounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockSoundPlayer(ctrl)
	snd.EXPECT().Play(sfx.Shoot, 70).Times(1)

	s := emptyArena(t, Options{Sound: snd})
	s.AdjustVolume(-30)
	s.Tick(component.Input{Fire: true, PointerX: 900, PointerY: 500}, frame)

	s.ToggleSound()
	s.World.Player.LastShot = -10
	s.Tick(component.Input{Fire: true, PointerX: 900, PointerY: 500}, frame)
}

func TestAdjustVolumeClamps(t *testing.T) {
	s := NewSession(Options{})
	s.AdjustVolume(50)
	assert.Equal(t, 100, s.Volume)
	s.AdjustVolume(-250)
	assert.Equal(t, 0, s.Volume)
}

func TestTickWithoutPlayer(t *testing.T) {
	s := emptyArena(t, Options{})
	s.World.Player = nil
	s.World.AddProjectile(enemyBullet(500, 500))
	assert.NotPanics(t, func() { run(s, component.Input{Fire: true, Dash: true, Ultimate: true}, 20) })
}

func TestTickRecoversPanics(t *testing.T) {
	s := emptyArena(t, Options{})
	s.PlayerSystem = nil
	assert.NotPanics(t, func() { s.Tick(component.Input{}, frame) })
}

func TestTickBeforeStartIsNoop(t *testing.T) {
	s := NewSession(Options{})
	s.Tick(component.Input{}, frame)
	assert.Zero(t, s.World.Time)
}

func TestEndClearsSession(t *testing.T) {
	s := emptyArena(t, Options{})
	s.Tick(component.Input{Ultimate: true}, frame)
	s.PickupSystem.Drop(component.PickupBuff, 100, 100)
	s.World.AddProjectile(enemyBullet(100, 100))
	s.Scheduler.At(5, func() { t.Fatal("task survived End") })
	s.Stats.KillCount = 4

	s.End()
	s.End()

	assert.Nil(t, s.World.Player)
	assert.Empty(t, s.World.Pickups)
	assert.Empty(t, s.World.Projectiles)
	assert.Zero(t, s.Scheduler.Pending())
	assert.False(t, s.Ultimate.Active())
	assert.Equal(t, component.GameStat{}, s.Stats)
	assert.Equal(t, component.PhaseMenu, s.Phase)

	s.Start()
	run(s, component.Input{}, framesFor(6))
	assert.Zero(t, s.Stats.KillCount)
}

func TestDeltaTimeIsClamped(t *testing.T) {
	s := emptyArena(t, Options{})
	s.Tick(component.Input{}, 5)
	assert.InDelta(t, config.MaxDeltaTime, s.World.Time, 1e-9)
}
