// internal/ability/ultimate.go
package ability

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
)

// Ultimate — ульта: на время действия игрок стреляет чаще веером снарядов "ult",
// по окончании начинается перезарядка.
type Ultimate struct {
	active   *Timer
	cooldown *Timer
	fireRate float64
}

func NewUltimate(t config.Tuning) *Ultimate {
	return &Ultimate{
		active:   NewTimer(t.Ability.UltDuration),
		cooldown: NewTimer(t.Ability.UltCooldown),
		fireRate: t.Player.UltFireRate,
	}
}

// Activate включает ульту. Ничего не делает без игрока, во время действия или перезарядки.
func (u *Ultimate) Activate(p *component.Actor) bool {
	if p == nil || p.Dead || u.active.Active() || u.cooldown.Active() {
		return false
	}
	p.FireRate = u.fireRate
	u.active.Start()
	return true
}

// Update продвигает таймеры. По окончании действия возвращает игроку базовую
// скорострельность и запускает перезарядку.
func (u *Ultimate) Update(dt float64, p *component.Actor) {
	if u.active.Update(dt) {
		if p != nil {
			p.FireRate = p.BaseFireRate
		}
		u.cooldown.Start()
	}
	u.cooldown.Update(dt)
}

// Reset отменяет оба таймера
func (u *Ultimate) Reset(p *component.Actor) {
	if u.active.Active() && p != nil {
		p.FireRate = p.BaseFireRate
	}
	u.active.Stop()
	u.cooldown.Stop()
}

func (u *Ultimate) Active() bool { return u.active.Active() }

func (u *Ultimate) CoolingDown() bool { return u.cooldown.Active() }

func (u *Ultimate) Remaining() float64 { return u.active.Remaining() }

func (u *Ultimate) CooldownRemaining() float64 { return u.cooldown.Remaining() }

// WeaponOverride — спрайт и масштаб оружия на время ульты
func (u *Ultimate) WeaponOverride() (sprite string, scale float64, ok bool) {
	if !u.active.Active() {
		return "", 1, false
	}
	return config.SpriteUltWeapon, config.UltWeaponScale, true
}
