// internal/sfx/pcm.go
package sfx

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/gopxl/beep"
)

// Render выкачивает поток целиком в 16-битный little-endian стерео PCM
func Render(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render stream: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}

// Bank — заранее отрендеренные звуки всех категорий
type Bank map[Category][]byte

// NewBank синтезирует все категории. seed делает шумовые звуки воспроизводимыми.
func NewBank(seed int64) (Bank, error) {
	rng := rand.New(rand.NewSource(seed))
	bank := make(Bank, len(Categories))
	for _, c := range Categories {
		s, err := Synthesize(c, SampleRate, rng)
		if err != nil {
			return nil, err
		}
		pcm, err := Render(volume(s, c.Volume()))
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", c, err)
		}
		bank[c] = pcm
	}
	return bank, nil
}
