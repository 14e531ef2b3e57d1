// internal/system/player.go
package system

import (
	"time"

	"go-arena-survival/internal/component"
)

// MovePlayer двигает игрока по нажатым направлениям с проверкой препятствий
// отдельно по каждой оси.
func MovePlayer(p *component.Player, in component.Input, obstacles []component.Obstacle) {
	var dx, dy float64
	if in.Left {
		dx -= p.Speed
	}
	if in.Right {
		dx += p.Speed
	}
	if in.Up {
		dy -= p.Speed
	}
	if in.Down {
		dy += p.Speed
	}
	p.Rect = moveGated(p.Rect, dx, dy, obstacles)
}

// DamagePlayer снимает здоровье, не опуская его ниже нуля, и сбрасывает
// таймеры регенерации. Отрицательный урон игнорируется.
func DamagePlayer(p *component.Player, amount int, now time.Duration) {
	if amount < 0 {
		amount = 0
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	p.LastDamage = now
	p.LastRegen = now
}

// RegenPlayer restores one hp once delay has passed since the last hit and
// interval since the last regen step. Returns true if hp changed.
func RegenPlayer(p *component.Player, now, delay, interval time.Duration) bool {
	if p.HP >= p.MaxHP {
		return false
	}
	if now-p.LastDamage < delay || now-p.LastRegen < interval {
		return false
	}
	p.HP++
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	p.LastRegen = now
	return true
}
