// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-arena-shooter/internal/app"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/pkg/render"
)

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	env         *Env
	game        *game.Session
	closeReport func()
	started     bool
	over        bool
	final       component.GameStat

	health *ui.PlayerHealthIndicator
	dash   *ui.CooldownIndicator
	ult    *ui.CooldownIndicator
}

func NewGameState(sm *StateMachine, env *Env) *GameState {
	session, closeFn := env.NewSession()
	g := &GameState{
		sm:          sm,
		env:         env,
		game:        session,
		closeReport: closeFn,
		health:      ui.NewPlayerHealthIndicator(config.ScreenWidth-110, 20),
		dash:        ui.NewCooldownIndicator(config.ScreenWidth-120, config.ScreenHeight-40, 22, "Q", config.DashGlowColor),
		ult:         ui.NewCooldownIndicator(config.ScreenWidth-60, config.ScreenHeight-40, 22, "R", config.UltTrailColor),
	}
	session.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
		g.over = true
		if st, ok := e.Data.(component.GameStat); ok {
			g.final = st
		}
	}))
	return g
}

// Session возвращает текущую игровую сессию
func (g *GameState) Session() *game.Session {
	return g.game
}

// Enter запускает сессию один раз: возврат из паузы ее не перезапускает
func (g *GameState) Enter() {
	if g.started {
		return
	}
	g.started = true
	g.game.Start()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleSoundKeys()

	g.game.Tick(readInput(), deltaTime)

	now := g.game.World.Time
	g.dash.Update(now, g.game.Dash.CooldownRemaining(now))
	g.ult.Update(now, g.game.Ultimate.CooldownRemaining())

	if g.over {
		g.game.End()
		g.sm.SetState(NewGameOverState(g.sm, g.env, g.final, g.closeReport))
	}
}

func (g *GameState) handleSoundKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.game.ToggleSound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.game.AdjustVolume(config.VolumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.game.AdjustVolume(-config.VolumeStep)
	}
	g.env.SoundEnabled = g.game.SoundEnabled
	g.env.Volume = g.game.Volume
}

// readInput опрашивает клавиатуру и мышь
func readInput() component.Input {
	x, y := ebiten.CursorPosition()
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return component.Input{
		Up:       pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:     pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:     pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:    pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		PointerX: float64(x),
		PointerY: float64(y),
		Fire:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || pressed(ebiten.KeySpace),
		Dash:     inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Ultimate: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// HUD собирает данные для панели поверх арены
func (g *GameState) HUD() render.HUD {
	s := g.game
	now := s.World.Time
	h := render.HUD{
		Kills:         s.Stats.KillCount,
		Score:         s.Stats.TotalScore,
		BuffRemaining: s.Buff.Remaining(),
		UltActive:     s.Ultimate.Active(),
		UltRemaining:  s.Ultimate.Remaining(),
		UltCooldown:   s.Ultimate.CooldownRemaining(),
		DashCooldown:  s.Dash.CooldownRemaining(now),
		SoundEnabled:  s.SoundEnabled,
		Volume:        s.Volume,
	}
	if p := s.World.Player; p != nil {
		h.Health, h.MaxHealth = p.Health, p.MaxHealth
	}
	return h
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.game
	ctx := render.Context{
		FrameMultiplier: s.FrameMultiplier(),
		PlayerDead:      s.PlayerDead(),
	}
	if sprite, scale, ok := s.WeaponOverride(); ok {
		ctx.WeaponSprite, ctx.WeaponScale = sprite, scale
	}
	g.env.Renderer.Draw(screen, s.World, ctx)

	hud := g.HUD()
	render.DrawHUD(screen, hud, g.env.Colors)
	g.health.Draw(screen, hud.Health, hud.MaxHealth)
	now := s.World.Time
	g.dash.Draw(screen, now, hud.DashCooldown, g.env.Tuning.Ability.DashCooldown)
	g.ult.Draw(screen, now, hud.UltCooldown, g.env.Tuning.Ability.UltCooldown)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.0f", ebiten.ActualTPS()), 10, config.ScreenHeight-20)
}

// Exit ничего не очищает: из игры уходят и в паузу
func (g *GameState) Exit() {}
