// internal/audio/player.go
package audio

import (
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-arena-shooter/internal/sfx"
)

const maxVoices = 16

// Player проигрывает заранее синтезированные звуки через ebiten. Ошибки не всплывают
// наверх: звук, который не удалось проиграть, просто пропускается.
type Player struct {
	ctx    *audio.Context
	bank   sfx.Bank
	mu     sync.Mutex
	voices []*audio.Player
}

// NewPlayer создает аудиоконтекст и синтезирует банк звуков
func NewPlayer(seed int64) (*Player, error) {
	bank, err := sfx.NewBank(seed)
	if err != nil {
		return nil, err
	}
	return &Player{ctx: audio.NewContext(int(sfx.SampleRate)), bank: bank}, nil
}

// Play запускает звук категории с громкостью 0..100
func (p *Player) Play(c sfx.Category, volume int) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("sound playback failed", "category", c, "panic", r)
		}
	}()
	pcm, ok := p.bank[c]
	if !ok || volume <= 0 {
		return
	}
	v := p.ctx.NewPlayerFromBytes(pcm)
	v.SetVolume(float64(min(volume, 100)) / 100)
	v.Play()

	p.mu.Lock()
	defer p.mu.Unlock()
	alive := p.voices[:0]
	for _, old := range p.voices {
		if old.IsPlaying() {
			alive = append(alive, old)
		}
	}
	p.voices = append(alive, v)
	if len(p.voices) > maxVoices {
		p.voices[0].Pause()
		p.voices = p.voices[1:]
	}
}
