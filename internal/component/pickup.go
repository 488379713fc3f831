package component

// PickupKind — тип подбираемого предмета
type PickupKind string

const (
	PickupHeal PickupKind = "heal"
	PickupBuff PickupKind = "buff"
)

// Pickup — аптечка или бафф, выпавшие из врага
type Pickup struct {
	Position
	Kind      PickupKind
	SpawnTime float64
	Lifetime  float64
}

// Expired сообщает, истек ли срок жизни предмета
func (p *Pickup) Expired(now float64) bool {
	return now-p.SpawnTime >= p.Lifetime
}

// Remaining — сколько секунд осталось до исчезновения
func (p *Pickup) Remaining(now float64) float64 {
	r := p.Lifetime - (now - p.SpawnTime)
	if r < 0 {
		return 0
	}
	return r
}
