// internal/sfx/synth.go
package sfx

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate — частота дискретизации банка звуков
const SampleRate beep.SampleRate = 44100

// noise — белый шум заданной длительности
func noise(rate beep.SampleRate, d time.Duration, rng *rand.Rand) beep.Streamer {
	left := rate.N(d)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if left <= 0 {
			return 0, false
		}
		n := min(len(samples), left)
		for i := 0; i < n; i++ {
			v := rng.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		left -= n
		return n, true
	})
}

// envelope накладывает линейную атаку и затухание на поток длительностью d
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, rate beep.SampleRate, d, attack time.Duration) beep.Streamer {
	return &envelope{streamer: s, attack: rate.N(attack), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		} else if e.total > e.attack {
			vol = 1 - float64(e.pos-e.attack)/float64(e.total-e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume переводит линейную громкость в логарифмическую шкалу effects.Volume
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// tone — синус частоты freq длительностью d с огибающей
func tone(rate beep.SampleRate, freq float64, d, attack time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %v Hz tone: %w", freq, err)
	}
	return newEnvelope(beep.Take(rate.N(d), sine), rate, d, attack), nil
}

// sequence склеивает тоны одинаковой длительности
func sequence(rate beep.SampleRate, d time.Duration, freqs ...float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		t, err := tone(rate, f, d, 5*time.Millisecond)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return beep.Seq(parts...), nil
}

// mix смешивает потоки и обрезает результат до d
func mix(rate beep.SampleRate, d time.Duration, streams ...beep.Streamer) beep.Streamer {
	return beep.Take(rate.N(d), beep.Mix(streams...))
}

// Synthesize строит поток звука для категории
func Synthesize(c Category, rate beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	switch c {
	case Shoot:
		body, err := tone(rate, 660, 60*time.Millisecond, 2*time.Millisecond)
		if err != nil {
			return nil, err
		}
		click := newEnvelope(noise(rate, 20*time.Millisecond, rng), rate, 20*time.Millisecond, time.Millisecond)
		return mix(rate, 60*time.Millisecond, volume(body, 0.7), volume(click, 0.3)), nil
	case Hit:
		thud, err := tone(rate, 220, 70*time.Millisecond, 2*time.Millisecond)
		if err != nil {
			return nil, err
		}
		crack := newEnvelope(noise(rate, 50*time.Millisecond, rng), rate, 50*time.Millisecond, time.Millisecond)
		return mix(rate, 70*time.Millisecond, volume(thud, 0.6), volume(crack, 0.4)), nil
	case Kill:
		boom := newEnvelope(noise(rate, 250*time.Millisecond, rng), rate, 250*time.Millisecond, 5*time.Millisecond)
		low, err := tone(rate, 90, 250*time.Millisecond, 5*time.Millisecond)
		if err != nil {
			return nil, err
		}
		return mix(rate, 250*time.Millisecond, volume(boom, 0.6), volume(low, 0.5)), nil
	case Death:
		return sequence(rate, 120*time.Millisecond, 440, 330, 220, 110)
	case Dash:
		return newEnvelope(noise(rate, 180*time.Millisecond, rng), rate, 180*time.Millisecond, 40*time.Millisecond), nil
	case Ult:
		return sequence(rate, 70*time.Millisecond, 330, 440, 660, 880)
	case Heal:
		fund, err := tone(rate, 880, 300*time.Millisecond, 5*time.Millisecond)
		if err != nil {
			return nil, err
		}
		over, err := tone(rate, 1760, 300*time.Millisecond, 5*time.Millisecond)
		if err != nil {
			return nil, err
		}
		return mix(rate, 300*time.Millisecond, volume(fund, 0.7), volume(over, 0.3)), nil
	case Damage:
		return tone(rate, 120, 120*time.Millisecond, 3*time.Millisecond)
	}
	return nil, fmt.Errorf("unknown sound category %q", c)
}
