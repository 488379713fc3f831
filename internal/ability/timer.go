// internal/ability/timer.go
package ability

// Timer — обратный отсчет, который опрашивается раз в кадр. Заменяет отложенные
// вызовы: после завершения сессии таймер просто сбрасывается и ничего не трогает.
type Timer struct {
	Duration  float64
	remaining float64
	active    bool
}

// NewTimer создает остановленный таймер на duration секунд
func NewTimer(duration float64) *Timer {
	return &Timer{Duration: duration}
}

// Start запускает или перезапускает таймер с полной длительностью
func (t *Timer) Start() {
	t.remaining = t.Duration
	t.active = true
}

// Stop останавливает таймер без срабатывания. Повторный вызов безопасен.
func (t *Timer) Stop() {
	t.remaining = 0
	t.active = false
}

// Update продвигает таймер на dt. Возвращает true ровно в том кадре, когда таймер истек.
func (t *Timer) Update(dt float64) bool {
	if !t.active {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.active = false
	return true
}

// Active сообщает, идет ли отсчет
func (t *Timer) Active() bool {
	return t.active
}

// Remaining — сколько секунд осталось
func (t *Timer) Remaining() float64 {
	return t.remaining
}
