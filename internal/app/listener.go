// internal/app/listener.go
package app

import (
	"log/slog"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/report"
	"go-arena-shooter/internal/sfx"
)

// SessionEventListener переводит игровые события в статистику, звуки, дропы,
// вызовы спавнера и отчеты о прогрессе.
type SessionEventListener struct {
	session *Session
}

// OnEvent реализует интерфейс event.Listener.
func (l *SessionEventListener) OnEvent(e event.Event) {
	s := l.session
	switch e.Type {
	case event.ShotFired:
		s.play(sfx.Shoot)
	case event.PlayerHit:
		if d, ok := e.Data.(event.HitData); ok {
			s.Stats.DamageTaken += d.Damage
		}
		s.play(sfx.Damage)
	case event.PlayerDied:
		l.onPlayerDied()
	case event.EnemyHit:
		if d, ok := e.Data.(event.HitData); ok {
			s.Stats.DamageGiven += d.Damage
		}
		s.play(sfx.Hit)
	case event.EnemyKilled:
		if d, ok := e.Data.(event.HitData); ok {
			l.onEnemyKilled(d)
		}
	case event.PickupCollected:
		if d, ok := e.Data.(event.PickupData); ok {
			l.onPickup(d.Pickup)
		}
	}
}

func (l *SessionEventListener) onPlayerDied() {
	s := l.session
	p := s.World.Player
	s.play(sfx.Death)
	if p != nil {
		s.VisualEffectSystem.SpawnDeathBurst(p.X, p.Y)
		s.Ultimate.Reset(p)
		s.Buff.Reset(p)
	}
	s.Scheduler.At(s.World.Time+config.GameOverDelay, s.finish)
	s.queueReport(report.StageDeath)
	slog.Info("player died", "session", s.ID, "kills", s.Stats.KillCount, "score", s.Stats.TotalScore)
}

func (l *SessionEventListener) onEnemyKilled(d event.HitData) {
	s := l.session
	e := d.Target
	if e == nil {
		return
	}
	s.Stats.DamageGiven += d.Damage
	s.Stats.KillCount++
	if e.Variant == component.VariantFire {
		s.Stats.FireKillCount++
		s.Stats.TotalScore += s.Tuning.Enemy.FireScore
	} else {
		s.Stats.TotalScore += s.Tuning.Enemy.Score
	}

	s.VisualEffectSystem.SpawnDeathBurst(e.X, e.Y)
	s.VisualEffectSystem.SpawnExplosion(e.X, e.Y)
	switch d.Outcome {
	case component.OutcomeDropHeal:
		s.PickupSystem.Drop(component.PickupHeal, e.X, e.Y)
	case component.OutcomeDropBuff:
		s.PickupSystem.Drop(component.PickupBuff, e.X, e.Y)
	}
	s.play(sfx.Kill)
	s.SpawnSystem.Spawn(s.Stats.KillCount)
	s.queueReport(report.StageKill)
}

func (l *SessionEventListener) onPickup(p *component.Pickup) {
	s := l.session
	if p == nil {
		return
	}
	switch p.Kind {
	case component.PickupHeal:
		s.Stats.HealsUsed++
	case component.PickupBuff:
		s.Buff.Start(s.World.Player)
		s.Stats.BuffsTaken++
	}
	s.play(sfx.Heal)
}
