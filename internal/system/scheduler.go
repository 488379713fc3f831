// internal/system/scheduler.go
package system

import "sort"

type task struct {
	at  float64
	seq int
	fn  func()
}

// Scheduler хранит отложенные действия сессии (спавн врагов, экран поражения).
// Опрашивается раз в кадр из игрового цикла, поэтому действия никогда не выполняются
// после Clear.
type Scheduler struct {
	tasks []task
	seq   int
	gen   int // увеличивается в Clear
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At планирует fn на момент времени сессии at
func (s *Scheduler) At(at float64, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, task{at: at, seq: s.seq, fn: fn})
}

// Update выполняет все действия, срок которых наступил к now, в порядке времени.
// Действия, добавленные во время выполнения, ждут следующего кадра.
func (s *Scheduler) Update(now float64) {
	if len(s.tasks) == 0 {
		return
	}
	var due, rest []task
	for _, t := range s.tasks {
		if t.at <= now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	if len(due) == 0 {
		return
	}
	s.tasks = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})
	gen := s.gen
	for _, t := range due {
		if s.gen != gen {
			return
		}
		t.fn()
	}
}

// Clear отменяет все отложенные действия
func (s *Scheduler) Clear() {
	s.tasks = nil
	s.gen++
}

// Pending — число ожидающих действий
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}
