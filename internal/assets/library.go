// internal/assets/library.go
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-arena-shooter/internal/config"
)

var ErrNotReady = errors.New("assets are not loaded yet")

// Decoder превращает файл из fs в картинку
type Decoder func(fsys fs.FS, path string) (*ebiten.Image, error)

// Library управляет фоновой загрузкой и кэшированием спрайтов. Get никогда не блокирует:
// пока загрузка не завершена или ключ отсутствует, спрайт просто не рисуется.
type Library struct {
	mu      sync.RWMutex
	images  map[string]*ebiten.Image
	decode  Decoder
	ready   atomic.Bool
	done    chan struct{}
	started atomic.Bool
	missing atomic.Int32
}

// NewLibrary создает пустую библиотеку. nil decoder означает PNG через ebitenutil.
func NewLibrary(decode Decoder) *Library {
	if decode == nil {
		decode = decodeImage
	}
	return &Library{
		images: make(map[string]*ebiten.Image),
		decode: decode,
		done:   make(chan struct{}),
	}
}

func decodeImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Keys — все ключи спрайтов, которые ищет рендерер
func Keys() []string {
	keys := []string{
		config.SpriteWeapon, config.SpriteUltWeapon, config.SpriteUltBullet, config.SpriteFireEnemy,
		"pickup/heal", "pickup/buff",
	}
	for _, c := range config.Characters {
		keys = append(keys, c.Sprite)
	}
	keys = append(keys, config.EnemySprites...)
	for i := 0; i < config.ExplosionFrames; i++ {
		keys = append(keys, ExplosionKey(i))
	}
	return keys
}

// ExplosionKey — ключ кадра взрыва. Файлы кадров нумеруются с единицы.
func ExplosionKey(frame int) string {
	return fmt.Sprintf("explosion/%d", frame+1)
}

// Preload запускает загрузку в отдельной горутине. Ключ k ищется в файле k+".png".
// Отсутствующие файлы не считаются ошибкой. Повторный вызов ничего не делает.
func (l *Library) Preload(fsys fs.FS, keys []string) {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		start := time.Now()
		defer close(l.done)
		defer l.ready.Store(true)
		if fsys == nil {
			slog.Info("no asset directory, using vector sprites")
			return
		}
		for _, key := range keys {
			l.loadSingle(fsys, key)
		}
		slog.Info("assets loaded",
			"loaded", len(keys)-int(l.missing.Load()),
			"missing", l.missing.Load(),
			"took", time.Since(start))
	}()
}

func (l *Library) loadSingle(fsys fs.FS, key string) {
	defer func() {
		if r := recover(); r != nil {
			l.missing.Add(1)
			slog.Warn("asset decoder panicked", "key", key, "panic", r)
		}
	}()
	img, err := l.decode(fsys, key+".png")
	if err != nil {
		l.missing.Add(1)
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to load asset", "key", key, "err", err)
		}
		return
	}
	l.mu.Lock()
	l.images[key] = img
	l.mu.Unlock()
}

// Ready сообщает, завершена ли загрузка
func (l *Library) Ready() bool {
	return l.ready.Load()
}

// Wait блокирует до окончания загрузки или отмены ctx
func (l *Library) Wait(ctx context.Context) error {
	if !l.started.Load() {
		return ErrNotReady
	}
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrNotReady, ctx.Err())
	}
}

// Get возвращает спрайт по ключу
func (l *Library) Get(key string) (*ebiten.Image, bool) {
	if !l.Ready() {
		return nil, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[key]
	return img, ok
}

// Len — сколько спрайтов загружено
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.images)
}
