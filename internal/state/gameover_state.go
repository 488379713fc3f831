// internal/state/gameover_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/pkg/render"
)

// GameOverState показывает итоговую статистику
type GameOverState struct {
	sm          *StateMachine
	env         *Env
	stats       component.GameStat
	closeReport func()
}

func NewGameOverState(sm *StateMachine, env *Env, stats component.GameStat, closeReport func()) *GameOverState {
	return &GameOverState{sm: sm, env: env, stats: stats, closeReport: closeReport}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.sm.SetState(NewCountdownState(s.sm, s.env))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.sm.SetState(NewMenuState(s.sm, s.env))
	}
}

// Lines — строки итогового экрана
func (s *GameOverState) Lines() []string {
	st := s.stats
	return []string{
		"GAME OVER",
		fmt.Sprintf("Score %d", st.TotalScore),
		fmt.Sprintf("Kills %d (fire %d)", st.KillCount, st.FireKillCount),
		fmt.Sprintf("Damage dealt %d, taken %d", st.DamageGiven, st.DamageTaken),
		fmt.Sprintf("Heals %d, buffs %d", st.HealsUsed, st.BuffsTaken),
		"",
		"Space play again, Esc menu",
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(s.env.Colors.Background)
	y := screen.Bounds().Dy()/2 - 60
	for i, l := range s.Lines() {
		render.DrawCentered(screen, l, y+i*20, s.env.Colors.Text)
	}
}

// Exit закрывает отправку прогресса завершенной сессии
func (s *GameOverState) Exit() {
	if s.closeReport != nil {
		s.closeReport()
		s.closeReport = nil
	}
}
