// internal/sfx/category.go
package sfx

// Category — звук игрового события
type Category string

const (
	Shoot  Category = "shoot"
	Hit    Category = "hit"
	Kill   Category = "kill"
	Death  Category = "death"
	Dash   Category = "dash"
	Ult    Category = "ult"
	Heal   Category = "heal"
	Damage Category = "damage"
)

// Categories — все категории в порядке генерации банка
var Categories = []Category{Shoot, Hit, Kill, Death, Dash, Ult, Heal, Damage}

// Volume — относительная громкость категории, выстрел тише остальных
func (c Category) Volume() float64 {
	switch c {
	case Shoot:
		return 0.45
	case Damage:
		return 0.6
	}
	return 0.8
}
