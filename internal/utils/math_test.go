package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 45.0, Clamp(10, 45, 955))
	assert.Equal(t, 955.0, Clamp(2000, 45, 955))
	assert.Equal(t, 500.0, Clamp(500, 45, 955))
}

func TestNormalizeAngleRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-100, 100).Draw(t, "angle")
		n := NormalizeAngle(a)
		if n < -math.Pi-1e-9 || n > math.Pi+1e-9 {
			t.Fatalf("angle %v normalized to %v", a, n)
		}
		if d := math.Abs(math.Sin(n) - math.Sin(a)); d > 1e-6 {
			t.Fatalf("sin mismatch %v", d)
		}
	})
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = Normalize(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("ARENA_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnvDefault("ARENA_TEST_KEY", "fallback"))
	t.Setenv("ARENA_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnvDefault("ARENA_TEST_KEY", "fallback"))
}

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(10), b.Intn(10))
		assert.Equal(t, a.Range(0.15, 0.43), b.Range(0.15, 0.43))
	}
	assert.Equal(t, 0, a.Intn(0))
	assert.Equal(t, 2.0, a.Range(2, 1))
}
