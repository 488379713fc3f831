// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arena-shooter/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.previousState.Session().ToggleSound()
		s.previousState.env.SoundEnabled = s.previousState.Session().SoundEnabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		// выход в меню завершает сессию
		s.previousState.Session().End()
		s.previousState.closeReport()
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.previousState.env))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	colors := s.previousState.env.Colors
	render.DrawOverlay(screen, colors)
	h := screen.Bounds().Dy() / 2
	render.DrawCentered(screen, "PAUSED", h-10, colors.TextLight)
	render.DrawCentered(screen, "P / Esc resume, M sound, Backspace menu", h+14, colors.TextLight)
}

func (s *PauseState) Exit() {}
