package sfx

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankCoversAllCategories(t *testing.T) {
	bank, err := NewBank(1)
	require.NoError(t, err)
	for _, c := range Categories {
		pcm, ok := bank[c]
		require.True(t, ok, "missing %s", c)
		assert.NotEmpty(t, pcm)
		assert.Zero(t, len(pcm)%4, "%s is not whole stereo frames", c)
	}
}

func TestSynthesizeUnknown(t *testing.T) {
	_, err := Synthesize("nope", SampleRate, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestRenderLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := 100 * time.Millisecond
	pcm, err := Render(noise(SampleRate, d, rng))
	require.NoError(t, err)
	assert.Equal(t, SampleRate.N(d)*4, len(pcm))
}

func TestRenderClamps(t *testing.T) {
	loud := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		samples[0] = [2]float64{3, -3}
		return 1, false
	})
	pcm, err := Render(loud)
	require.NoError(t, err)
	require.Len(t, pcm, 4)
	assert.Equal(t, []byte{0xff, 0x7f, 0x01, 0x80}, pcm)
}

func TestBankDeterministic(t *testing.T) {
	a, err := NewBank(9)
	require.NoError(t, err)
	b, err := NewBank(9)
	require.NoError(t, err)
	assert.Equal(t, a[Kill], b[Kill])
}
