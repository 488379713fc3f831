// internal/component/visual.go
package component

// Segment — отрезок шлейфа рывка
type Segment struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Alpha          float64 // базовая прозрачность отрезка
}

// DashEffect — след рывка, затухающий за Duration
type DashEffect struct {
	Segments []Segment
	Start    float64
	Duration float64
}

// Alpha — прозрачность эффекта в момент now
func (d *DashEffect) Alpha(now float64) float64 {
	return fade(now-d.Start, d.Duration)
}

// Done сообщает, закончился ли эффект
func (d *DashEffect) Done(now float64) bool {
	return now-d.Start >= d.Duration
}

// Particle — частица взрыва при смерти врага
type Particle struct {
	Position
	Velocity
	Size     float64
	Born     float64
	Lifetime float64
}

// Alpha — прозрачность частицы в момент now
func (p *Particle) Alpha(now float64) float64 {
	return fade(now-p.Born, p.Lifetime)
}

// Explosion — покадровая анимация взрыва
type Explosion struct {
	Position
	Frame  int
	Frames int
	Size   float64
}

// Done сообщает, проиграны ли все кадры
func (e *Explosion) Done() bool {
	return e.Frame >= e.Frames
}

func fade(elapsed, duration float64) float64 {
	if duration <= 0 || elapsed >= duration {
		return 0
	}
	if elapsed < 0 {
		return 1
	}
	return 1 - elapsed/duration
}
