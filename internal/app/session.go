// internal/app/session.go
package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"go-arena-shooter/internal/ability"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/report"
	"go-arena-shooter/internal/sfx"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/gridmap"
)

// Options — зависимости и параметры сессии. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Tuning          config.Tuning
	Grid            *gridmap.Grid
	Character       config.Character
	Seed            int64
	FrameMultiplier float64
	Sound           SoundPlayer
	Reporter        report.Reporter
	SessionID       string
}

type pendingReport struct {
	stage report.Stage
	stats component.GameStat
}

// Session владеет всем состоянием одной игры: миром, системами, таймерами способностей,
// планировщиком и статистикой. Вся мутация происходит внутри Tick.
type Session struct {
	ID        string
	Character config.Character
	Tuning    config.Tuning
	Grid      *gridmap.Grid
	World     *entity.World
	Stats     component.GameStat
	Phase     component.Phase

	PlayerSystem       *system.PlayerSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	PickupSystem       *system.PickupSystem
	EnemyAISystem      *system.EnemyAISystem
	SpawnSystem        *system.SpawnSystem
	VisualEffectSystem *system.VisualEffectSystem
	Scheduler          *system.Scheduler
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	Ultimate *ability.Ultimate
	Dash     *ability.Dash
	Buff     *ability.Buff

	SoundEnabled bool
	Volume       int

	sound    SoundPlayer
	reporter report.Reporter
	bounds   component.Bounds
	fm       float64
	pending  []pendingReport
}

// NewSession собирает сессию. Игра начинается только после Start.
func NewSession(opts Options) *Session {
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.DefaultTuning()
	}
	if opts.Grid == nil {
		opts.Grid = gridmap.NewArena(config.CellSize)
	}
	if opts.FrameMultiplier <= 0 {
		opts.FrameMultiplier = 1
	}
	if opts.Sound == nil {
		opts.Sound = silentPlayer{}
	}
	if opts.Reporter == nil {
		opts.Reporter = report.Nop{}
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Character.Key == "" {
		opts.Character = config.Characters[0]
	}

	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	scheduler := system.NewScheduler()
	bounds := component.ArenaBounds(config.ScreenWidth, config.ScreenHeight, config.ArenaMargin)

	s := &Session{
		ID:              opts.SessionID,
		Character:       opts.Character,
		Tuning:          opts.Tuning,
		Grid:            opts.Grid,
		World:           world,
		Phase:           component.PhaseMenu,
		Scheduler:       scheduler,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Ultimate:        ability.NewUltimate(opts.Tuning),
		Dash:            ability.NewDash(opts.Tuning),
		Buff:            ability.NewBuff(opts.Tuning),
		SoundEnabled:    true,
		Volume:          config.DefaultVolume,
		sound:           opts.Sound,
		reporter:        opts.Reporter,
		bounds:          bounds,
		fm:              opts.FrameMultiplier,
	}
	s.PlayerSystem = system.NewPlayerSystem(world, opts.Tuning.Player, bounds, &s.Stats, dispatcher)
	s.ProjectileSystem = system.NewProjectileSystem(world, opts.Grid, opts.Tuning.Projectile)
	s.CombatSystem = system.NewCombatSystem(world, opts.Tuning.Drop, rng, dispatcher)
	s.PickupSystem = system.NewPickupSystem(world, opts.Tuning.Pickup, dispatcher)
	s.EnemyAISystem = system.NewEnemyAISystem(world, opts.Tuning.Enemy, rng, bounds)
	s.SpawnSystem = system.NewSpawnSystem(world, opts.Tuning, rng, scheduler, bounds)
	s.SpawnSystem.SetFrameMultiplier(opts.FrameMultiplier)
	s.VisualEffectSystem = system.NewVisualEffectSystem(world, rng)

	// Слушатель сессии должен увидеть убийство раньше PlayerSystem: бонус к здоровью
	// проверяет уже обновленный счетчик.
	listener := &SessionEventListener{session: s}
	for _, t := range []event.EventType{
		event.PlayerHit, event.PlayerDied, event.EnemyHit, event.EnemyKilled,
		event.PickupCollected, event.ShotFired,
	} {
		dispatcher.Subscribe(t, listener)
	}
	dispatcher.Subscribe(event.EnemyKilled, s.PlayerSystem)

	return s
}

// Start сбрасывает мир, создает игрока в центре арены и первого врага.
func (s *Session) Start() {
	s.End()
	c := s.Character
	pt := s.Tuning.Player
	p := &component.Actor{
		Kind:         component.KindPlayer,
		Sprite:       c.Sprite,
		Position:     component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2},
		Width:        config.ActorWidth,
		Height:       config.ActorHeight,
		Speed:        c.MoveSpeed,
		Health:       c.Health,
		MaxHealth:    c.Health,
		FireRate:     pt.FireRate,
		BaseFireRate: pt.FireRate,
		BulletSpeed:  pt.BulletSpeed,
		BulletSize:   pt.BulletSize,
		BulletDamage: pt.BulletDamage,
		BulletColor:  config.PlayerBulletCol,
	}
	p.LastShot = -p.FireRate
	s.World.Player = p
	s.Phase = component.PhasePlaying
	s.SpawnSystem.Spawn(0)
	slog.Info("session started", "session", s.ID, "character", c.Name)
}

// End останавливает способности, отменяет отложенные задачи и очищает все коллекции.
// Повторный вызов безопасен.
func (s *Session) End() {
	s.Ultimate.Reset(s.World.Player)
	s.Buff.Reset(s.World.Player)
	s.Dash.Reset()
	s.Scheduler.Clear()
	s.World.Clear()
	s.Stats = component.GameStat{}
	s.pending = nil
	s.Phase = component.PhaseMenu
}

// Tick продвигает симуляцию ровно на один кадр. Паника внутри кадра логируется и
// не останавливает игровой цикл.
func (s *Session) Tick(in component.Input, dt float64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("tick panic recovered", "session", s.ID, "panic", fmt.Sprint(r))
		}
	}()
	if s.Phase != component.PhasePlaying {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	s.World.Time += dt
	now := s.World.Time
	player := s.World.Player

	s.PlayerSystem.Update(in, s.fm, s.Ultimate.Active())
	if in.Dash {
		if fx, ok := s.Dash.Try(now, player, s.World.LastMoveX, s.World.LastMoveY, s.bounds, s.Rng); ok {
			s.VisualEffectSystem.AddDash(fx)
			s.play(sfx.Dash)
		}
	}
	if in.Ultimate && s.Ultimate.Activate(player) {
		s.play(sfx.Ult)
	}

	s.ProjectileSystem.Update()
	s.CombatSystem.Update()
	s.PickupSystem.Update()
	s.EnemyAISystem.Update()

	s.Ultimate.Update(dt, s.World.Player)
	s.Buff.Update(dt, s.World.Player)
	s.Scheduler.Update(now)
	s.VisualEffectSystem.Update(s.fm)

	s.flushReports()
}

func (s *Session) finish() {
	if s.Phase != component.PhasePlaying {
		return
	}
	s.Phase = component.PhaseGameOver
	slog.Info("game over", "session", s.ID, "kills", s.Stats.KillCount, "score", s.Stats.TotalScore)
	s.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: s.Stats})
}

func (s *Session) play(c sfx.Category) {
	if s.SoundEnabled {
		s.sound.Play(c, s.Volume)
	}
}

func (s *Session) queueReport(stage report.Stage) {
	s.pending = append(s.pending, pendingReport{stage: stage, stats: s.Stats})
}

func (s *Session) flushReports() {
	for _, r := range s.pending {
		s.reporter.Report(r.stage, r.stats)
	}
	s.pending = s.pending[:0]
}

// ToggleSound включает и выключает звук
func (s *Session) ToggleSound() {
	s.SoundEnabled = !s.SoundEnabled
}

// AdjustVolume меняет громкость в пределах [0, 100]
func (s *Session) AdjustVolume(delta int) {
	s.Volume = int(utils.Clamp(float64(s.Volume+delta), 0, 100))
}

// FrameMultiplier — множитель скорости, выбранный при создании сессии
func (s *Session) FrameMultiplier() float64 {
	return s.fm
}

// PlayerDead сообщает, погиб ли игрок
func (s *Session) PlayerDead() bool {
	return s.World.Player != nil && s.World.Player.Dead
}

// WeaponOverride — спрайт и масштаб оружия во время ульты
func (s *Session) WeaponOverride() (string, float64, bool) {
	return s.Ultimate.WeaponOverride()
}
