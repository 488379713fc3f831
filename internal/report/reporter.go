// internal/report/reporter.go
package report

//go:generate go tool mockgen -destination=./mocks/reporter_mock.go -package=mocks . Reporter

import (
	"log/slog"

	"go-arena-shooter/internal/component"
)

// Stage — момент сессии, в который отправляется прогресс
type Stage string

const (
	StageKill  Stage = "kill"
	StageDeath Stage = "death"
)

// Reporter принимает прогресс сессии. Реализации не должны блокировать игровой цикл.
type Reporter interface {
	Report(stage Stage, stats component.GameStat)
}

// Nop ничего не отправляет
type Nop struct{}

func (Nop) Report(Stage, component.GameStat) {}

// LogReporter пишет прогресс в лог
type LogReporter struct {
	SessionID string
}

func (r LogReporter) Report(stage Stage, stats component.GameStat) {
	slog.Info("progress",
		"session", r.SessionID,
		"stage", stage,
		"kills", stats.KillCount,
		"score", stats.TotalScore,
		"damage_taken", stats.DamageTaken,
	)
}

// Multi рассылает прогресс нескольким получателям
type Multi []Reporter

func (m Multi) Report(stage Stage, stats component.GameStat) {
	for _, r := range m {
		r.Report(stage, stats)
	}
}
