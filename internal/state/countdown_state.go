// internal/state/countdown_state.go
package state

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"go-arena-shooter/internal/ability"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/pkg/render"
)

// CountdownState показывает обратный отсчет перед началом игры
type CountdownState struct {
	sm    *StateMachine
	env   *Env
	timer *ability.Timer
	empty *entity.World
}

func NewCountdownState(sm *StateMachine, env *Env) *CountdownState {
	return &CountdownState{
		sm:    sm,
		env:   env,
		timer: ability.NewTimer(config.CountdownSeconds),
		empty: entity.NewWorld(),
	}
}

func (s *CountdownState) Enter() {
	s.timer.Start()
}

func (s *CountdownState) Update(deltaTime float64) {
	if s.timer.Update(deltaTime) {
		s.sm.SetState(NewGameState(s.sm, s.env))
	}
}

func (s *CountdownState) Draw(screen *ebiten.Image) {
	if s.env.Renderer != nil {
		s.env.Renderer.Draw(screen, s.empty, render.Context{})
	} else {
		screen.Fill(s.env.Colors.Background)
	}
	left := int(math.Ceil(s.timer.Remaining()))
	render.DrawCentered(screen, fmt.Sprintf("%s  %d", s.env.Character.Name, left), screen.Bounds().Dy()/2, s.env.Colors.Text)
}

func (s *CountdownState) Exit() {}
