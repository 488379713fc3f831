// internal/component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости в пикселях за кадр
type Velocity struct {
	VX, VY float64
}

// Bounds — прямоугольник, в котором могут находиться акторы
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// ArenaBounds строит границы арены с отступом margin от краев поля w×h
func ArenaBounds(w, h, margin float64) Bounds {
	return Bounds{MinX: margin, MinY: margin, MaxX: w - margin, MaxY: h - margin}
}

// Clamp прижимает точку к границам
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	if x < b.MinX {
		x = b.MinX
	} else if x > b.MaxX {
		x = b.MaxX
	}
	if y < b.MinY {
		y = b.MinY
	} else if y > b.MaxY {
		y = b.MaxY
	}
	return x, y
}
