package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"go-arena-shooter/internal/config"
)

// seqRoller возвращает заранее заданные броски по кругу
type seqRoller struct {
	rolls []int
	i     int
}

func (r *seqRoller) Intn(n int) int {
	v := r.rolls[r.i%len(r.rolls)]
	r.i++
	return v % n
}

func newEnemy(health int) *Actor {
	return &Actor{Kind: KindEnemy, Variant: VariantDefault, Width: 70, Height: 70, Health: health, MaxHealth: health}
}

func TestDropRoll(t *testing.T) {
	drop := config.DefaultTuning().Drop
	tests := []struct {
		name  string
		rolls []int
		want  Outcome
	}{
		{"low first roll explodes", []int{5}, OutcomeExplode},
		{"zero first roll explodes", []int{0}, OutcomeExplode},
		{"high first, low second heals", []int{6, 6}, OutcomeDropHeal},
		{"high first, high second buffs", []int{9, 7}, OutcomeDropBuff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DropRoll(drop, &seqRoller{rolls: tt.rolls}))
		})
	}
}

func TestTakeDamageEnemy(t *testing.T) {
	drop := config.DefaultTuning().Drop
	e := newEnemy(2)

	assert.Equal(t, OutcomeHit, e.TakeDamage(1, drop, &seqRoller{rolls: []int{0}}))
	assert.Equal(t, 1, e.Health)
	assert.False(t, e.Dead)

	out := e.TakeDamage(1, drop, &seqRoller{rolls: []int{0}})
	assert.Equal(t, OutcomeExplode, out)
	assert.True(t, out.Lethal())
	assert.True(t, e.Dead)

	assert.Equal(t, OutcomeNone, e.TakeDamage(5, drop, &seqRoller{rolls: []int{0}}))
	assert.Equal(t, 0, e.Health)
}

func TestTakeDamagePlayerDiesOnce(t *testing.T) {
	drop := config.DefaultTuning().Drop
	p := &Actor{Kind: KindPlayer, Health: 1, MaxHealth: 5}

	assert.Equal(t, OutcomeDied, p.TakeDamage(4, drop, nil))
	assert.Equal(t, OutcomeNone, p.TakeDamage(4, drop, nil))
	assert.Equal(t, 0, p.Health)
}

func TestHealthStaysInRange(t *testing.T) {
	drop := config.DefaultTuning().Drop
	rapid.Check(t, func(t *rapid.T) {
		max := rapid.IntRange(1, 20).Draw(t, "max")
		a := &Actor{Kind: KindPlayer, Health: max, MaxHealth: max}
		hits := rapid.SliceOf(rapid.IntRange(-3, 12)).Draw(t, "hits")
		for _, h := range hits {
			if h < 0 {
				a.Heal(-h)
			} else {
				a.TakeDamage(h, drop, nil)
			}
			if a.Health < 0 || a.Health > a.MaxHealth {
				t.Fatalf("health %d out of [0,%d]", a.Health, a.MaxHealth)
			}
		}
	})
}

func TestHeal(t *testing.T) {
	p := &Actor{Kind: KindPlayer, Health: 5, MaxHealth: 5}
	require.False(t, p.Heal(1), "heal at full health is refused")

	p.Health = 4
	require.True(t, p.Heal(3))
	assert.Equal(t, 5, p.Health)

	p.SetMaxHealth(8)
	assert.Equal(t, 8, p.MaxHealth)
	assert.Equal(t, 5, p.Health)
	p.SetMaxHealth(3)
	assert.Equal(t, 3, p.Health)
}

func TestCanShoot(t *testing.T) {
	a := &Actor{FireRate: 0.6, LastShot: 1.0}
	assert.False(t, a.CanShoot(1.5))
	assert.True(t, a.CanShoot(1.6))
}

func TestBoundsClamp(t *testing.T) {
	b := ArenaBounds(1000, 1000, 45)
	x, y := b.Clamp(-10, 2000)
	assert.Equal(t, 45.0, x)
	assert.Equal(t, 955.0, y)
}
