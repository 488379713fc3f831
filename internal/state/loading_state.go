// internal/state/loading_state.go
package state

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"go-arena-shooter/pkg/render"
)

// LoadingState ждет окончания фоновой загрузки спрайтов
type LoadingState struct {
	sm      *StateMachine
	env     *Env
	elapsed float64
}

func NewLoadingState(sm *StateMachine, env *Env) *LoadingState {
	return &LoadingState{sm: sm, env: env}
}

func (s *LoadingState) Enter() {}

func (s *LoadingState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.env.Assets == nil || s.env.Assets.Ready() {
		s.sm.SetState(NewCountdownState(s.sm, s.env))
	}
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(s.env.Colors.Background)
	dots := strings.Repeat(".", int(s.elapsed*3)%4)
	render.DrawCentered(screen, "Loading"+dots, screen.Bounds().Dy()/2, s.env.Colors.Text)
}

func (s *LoadingState) Exit() {}
