package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/report"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()             { *s.log = append(*s.log, s.name+" enter") }
func (s *recordingState) Update(float64)     { *s.log = append(*s.log, s.name+" update") }
func (s *recordingState) Draw(*ebiten.Image) {}
func (s *recordingState) Exit()              { *s.log = append(*s.log, s.name+" exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1)

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	assert.Same(t, b, sm.Current())
	sm.SetState(nil)
	sm.Update(0.1)

	assert.Equal(t, []string{"a enter", "a update", "a exit", "b enter", "b exit"}, log)
}

func testEnv() *Env {
	return &Env{
		Tuning:          config.DefaultTuning(),
		Character:       config.Characters[2],
		Seed:            3,
		FrameMultiplier: 1,
		SoundEnabled:    false,
		Volume:          40,
		Colors:          DefaultColors(),
	}
}

func TestEnvNewSession(t *testing.T) {
	env := testEnv()
	var ids []string
	var closed int
	env.NewReporter = func(id string, c config.Character) (report.Reporter, func()) {
		ids = append(ids, id)
		assert.Equal(t, "tank", c.Key)
		return report.Nop{}, func() { closed++ }
	}

	s, closeFn := env.NewSession()
	require.Len(t, ids, 1)
	assert.Equal(t, ids[0], s.ID)
	assert.False(t, s.SoundEnabled)
	assert.Equal(t, 40, s.Volume)
	closeFn()
	assert.Equal(t, 1, closed)

	s2, _ := env.NewSession()
	assert.NotEqual(t, s.ID, s2.ID)
}

func TestGameStateStartsOnce(t *testing.T) {
	sm := NewStateMachine()
	g := NewGameState(sm, testEnv())
	sm.SetState(g)
	require.NotNil(t, g.Session().World.Player)
	assert.Equal(t, 8, g.Session().World.Player.Health)

	g.Session().Stats.KillCount = 3
	sm.SetState(NewPauseState(sm, g))
	sm.SetState(g)
	assert.Equal(t, 3, g.Session().Stats.KillCount, "resuming must not restart the session")

	hud := g.HUD()
	assert.Equal(t, 8, hud.MaxHealth)
	assert.Equal(t, 3, hud.Kills)
	assert.False(t, hud.SoundEnabled)
}

func TestGameOverLines(t *testing.T) {
	closed := false
	s := NewGameOverState(NewStateMachine(), testEnv(), component.GameStat{
		KillCount: 12, FireKillCount: 1, TotalScore: 14, DamageTaken: 5, DamageGiven: 30, HealsUsed: 2, BuffsTaken: 1,
	}, func() { closed = true })

	lines := s.Lines()
	assert.Contains(t, lines, "Score 14")
	assert.Contains(t, lines, "Kills 12 (fire 1)")
	assert.Contains(t, lines, "Damage dealt 30, taken 5")

	s.Exit()
	s.Exit()
	assert.True(t, closed)
}
