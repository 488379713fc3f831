// internal/state/env.go
package state

import (
	"github.com/google/uuid"

	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/assets"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/report"
	"go-arena-shooter/pkg/gridmap"
	"go-arena-shooter/pkg/render"
)

// ReporterFactory создает получателя прогресса для новой сессии и функцию его закрытия
type ReporterFactory func(sessionID string, c config.Character) (report.Reporter, func())

// Env — общие для всех экранов зависимости и настройки
type Env struct {
	Tuning          config.Tuning
	Grid            *gridmap.Grid
	Assets          *assets.Library
	Renderer        *render.ArenaRenderer
	Colors          render.ArenaColors
	Sound           app.SoundPlayer
	NewReporter     ReporterFactory
	Seed            int64
	FrameMultiplier float64
	Character       config.Character
	SoundEnabled    bool
	Volume          int
}

// NewSession создает сессию для выбранного персонажа
func (e *Env) NewSession() (*app.Session, func()) {
	id := uuid.NewString()
	var rep report.Reporter = report.Nop{}
	closeFn := func() {}
	if e.NewReporter != nil {
		rep, closeFn = e.NewReporter(id, e.Character)
	}
	s := app.NewSession(app.Options{
		Tuning:          e.Tuning,
		Grid:            e.Grid,
		Character:       e.Character,
		Seed:            e.Seed,
		FrameMultiplier: e.FrameMultiplier,
		Sound:           e.Sound,
		Reporter:        rep,
		SessionID:       id,
	})
	s.SoundEnabled = e.SoundEnabled
	s.Volume = e.Volume
	return s, closeFn
}

// DefaultColors собирает палитру рендерера из констант конфигурации
func DefaultColors() render.ArenaColors {
	return render.ArenaColors{
		Background:  config.BackgroundColor,
		Wall:        config.WallColor,
		WallStroke:  config.WallStrokeColor,
		PlayerBody:  config.PlayerBodyColor,
		EnemyBody:   config.EnemyBodyColor,
		FireBody:    config.FireBodyColor,
		Particle:    config.ParticleColor,
		DashCore:    config.DashCoreColor,
		DashGlow:    config.DashGlowColor,
		Heal:        config.HealColor,
		Buff:        config.BuffColor,
		UltTrail:    config.UltTrailColor,
		UltCore:     config.UltCoreColor,
		BarBack:     config.HealthBarBack,
		HealthHigh:  config.HealthHighColor,
		HealthMid:   config.HealthMidColor,
		HealthLow:   config.HealthLowColor,
		Text:        config.TextDarkColor,
		TextLight:   config.TextLightColor,
		Overlay:     config.OverlayColor,
		StrokeWidth: 2,
	}
}
