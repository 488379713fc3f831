// internal/component/player.go
package component

// Input — состояние управления за один кадр
type Input struct {
	Up, Down, Left, Right bool
	PointerX, PointerY    float64
	Fire                  bool // кнопка мыши зажата
	Dash                  bool // Q нажата в этом кадре
	Ultimate              bool // R нажата в этом кадре
}

// Axis возвращает знаковую сумму направлений движения
func (in Input) Axis() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}
