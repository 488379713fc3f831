package ability

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
)

// Buff — усиление выстрелов после подбора баффа
type Buff struct {
	timer *Timer
}

func NewBuff(t config.Tuning) *Buff {
	return &Buff{timer: NewTimer(t.Pickup.BuffDuration)}
}

// Start выставляет Buffed и (пере)запускает таймер
func (b *Buff) Start(p *component.Actor) {
	if p == nil {
		return
	}
	p.Buffed = true
	b.timer.Start()
}

// Update снимает Buffed по истечении таймера
func (b *Buff) Update(dt float64, p *component.Actor) {
	if b.timer.Update(dt) && p != nil {
		p.Buffed = false
	}
}

func (b *Buff) Reset(p *component.Actor) {
	b.timer.Stop()
	if p != nil {
		p.Buffed = false
	}
}

func (b *Buff) Active() bool { return b.timer.Active() }

func (b *Buff) Remaining() float64 { return b.timer.Remaining() }
