package assets

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecode не трогает графику: возвращает пустую картинку для существующих файлов
func fakeDecode(fsys fs.FS, path string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	if string(data) == "broken" {
		return nil, errors.New("bad png")
	}
	return new(ebiten.Image), nil
}

func TestPreload(t *testing.T) {
	fsys := fstest.MapFS{
		"player/default.png": {Data: []byte("ok")},
		"enemy/0.png":        {Data: []byte("ok")},
		"enemy/1.png":        {Data: []byte("broken")},
	}
	l := NewLibrary(fakeDecode)
	_, ok := l.Get("player/default")
	assert.False(t, ok, "nothing is served before loading finishes")

	l.Preload(fsys, []string{"player/default", "enemy/0", "enemy/1", "enemy/2"})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, l.Wait(ctx))
	require.True(t, l.Ready())

	_, ok = l.Get("player/default")
	assert.True(t, ok)
	_, ok = l.Get("enemy/1")
	assert.False(t, ok)
	_, ok = l.Get("enemy/2")
	assert.False(t, ok)
	assert.Equal(t, 2, l.Len())
}

func TestPreloadWithoutDirectory(t *testing.T) {
	l := NewLibrary(fakeDecode)
	l.Preload(nil, Keys())
	require.NoError(t, l.Wait(context.Background()))
	assert.True(t, l.Ready())
	assert.Zero(t, l.Len())
}

func TestWaitBeforePreload(t *testing.T) {
	l := NewLibrary(fakeDecode)
	assert.ErrorIs(t, l.Wait(context.Background()), ErrNotReady)
}

func TestWaitCancelled(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	l := NewLibrary(func(fs.FS, string) (*ebiten.Image, error) {
		<-block
		return nil, fs.ErrNotExist
	})
	l.Preload(fstest.MapFS{}, []string{"a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Wait(ctx)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, l.Ready())
}

func TestKeysCoverRoster(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "player/tank")
	assert.Contains(t, keys, "enemy/fire")
	assert.Contains(t, keys, ExplosionKey(0))
	assert.Equal(t, "explosion/1", ExplosionKey(0))
}
