// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/pkg/render"
)

var characterKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// MenuState — выбор персонажа и старт игры
type MenuState struct {
	sm      *StateMachine
	env     *Env
	buttons []*ui.Button
	start   *ui.Button
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	m := &MenuState{sm: sm, env: env}
	const w, h = 220.0, 44.0
	x := (config.ScreenWidth - w) / 2
	for i, c := range config.Characters {
		label := fmt.Sprintf("%d. %s  spd %.1f  hp %d", i+1, c.Name, c.MoveSpeed, c.Health)
		m.buttons = append(m.buttons, ui.NewButton(x, 360+float64(i)*(h+12), w, h, label))
	}
	m.start = ui.NewButton(x, 360+float64(len(config.Characters))*(h+12)+30, w, h, "Start [Space]")
	return m
}

func (m *MenuState) Enter() {
	m.syncSelection()
}

func (m *MenuState) Update(deltaTime float64) {
	for i, key := range characterKeys {
		if i < len(config.Characters) && inpututil.IsKeyJustPressed(key) {
			m.env.Character = config.Characters[i]
		}
	}
	for i, b := range m.buttons {
		if b.IsClicked() {
			m.env.Character = config.Characters[i]
		}
	}
	m.syncSelection()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || m.start.IsClicked() {
		if m.env.Assets != nil && !m.env.Assets.Ready() {
			m.sm.SetState(NewLoadingState(m.sm, m.env))
			return
		}
		m.sm.SetState(NewCountdownState(m.sm, m.env))
	}
}

func (m *MenuState) syncSelection() {
	for i, b := range m.buttons {
		b.Selected = config.Characters[i].Key == m.env.Character.Key
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(m.env.Colors.Background)
	render.DrawCentered(screen, "ARENA", 260, m.env.Colors.Text)
	render.DrawCentered(screen, "WASD move, mouse aim and fire, Q dash, R ult, M sound, P pause", 300, m.env.Colors.Text)
	for _, b := range m.buttons {
		b.Draw(screen)
	}
	m.start.Draw(screen)
}

func (m *MenuState) Exit() {}
