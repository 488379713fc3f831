// internal/event/types.go
package event

import "go-arena-shooter/internal/component"

const (
	PlayerHit       EventType = "PlayerHit"       // Снаряд попал в игрока, Data: HitData
	PlayerDied      EventType = "PlayerDied"      // Игрок погиб, Data: HitData
	EnemyHit        EventType = "EnemyHit"        // Снаряд попал во врага без смерти, Data: HitData
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен, Data: HitData
	PickupCollected EventType = "PickupCollected" // Предмет подобран, Data: PickupData
	ShotFired       EventType = "ShotFired"       // Игрок выстрелил, Data: ShotData
	GameOver        EventType = "GameOver"        // Истекла пауза после смерти игрока
)

// HitData — данные событий попадания и смерти
type HitData struct {
	Target  *component.Actor
	Damage  int
	Outcome component.Outcome
}

// PickupData — данные события PickupCollected
type PickupData struct {
	Pickup *component.Pickup
}

// ShotData — данные события ShotFired
type ShotData struct {
	Type  component.ProjectileType
	Count int
}
