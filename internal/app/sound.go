// internal/app/sound.go
package app

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . SoundPlayer

import "go-arena-shooter/internal/sfx"

// SoundPlayer проигрывает короткие звуки. Вызов не должен блокировать тик.
type SoundPlayer interface {
	Play(category sfx.Category, volume int)
}

type silentPlayer struct{}

func (silentPlayer) Play(sfx.Category, int) {}
