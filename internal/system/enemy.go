// internal/system/enemy.go
package system

import (
	"time"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/defs"
	"go-arena-survival/pkg/geom"
)

// AttackParams — диапазон урона ближней атаки врага.
type AttackParams struct {
	DamageMin    int // inclusive
	DamageMax    int // inclusive
	MaxHitDamage int
}

// EffectFunc spawns a visual effect at (x, y) sized by damage.
type EffectFunc func(x, y float64, damage int)

// MoveEnemy moves the enemy toward target's origin at its speed, gating each
// axis against solid obstacles.
func MoveEnemy(e *component.Enemy, target geom.Rect, obstacles []component.Obstacle) {
	dir := geom.Direction(target.X-e.Rect.X, target.Y-e.Rect.Y)
	v := dir.Scale(e.Speed)
	e.Rect = moveGated(e.Rect, v.X, v.Y, obstacles)
}

// RollDamage rolls one hit. With the enemy's crit chance the hit is promoted
// to MaxHitDamage, otherwise it is uniform in [DamageMin, DamageMax].
func RollDamage(rng Rand, maxHP int, params AttackParams) int {
	if rng.Float64() < defs.CritChance(maxHP) {
		return params.MaxHitDamage
	}
	return rng.IntRange(params.DamageMin, params.DamageMax)
}

// TryAttack hits the target if the cooldown has elapsed and the enemy
// overlaps it. Returns the damage dealt (0 when no attack happened) and
// whether the hit brought the target to zero hp.
func TryAttack(e *component.Enemy, now time.Duration, target *component.Player, rng Rand, params AttackParams, onHit EffectFunc) (int, bool) {
	if now-e.LastAttack < e.AttackCooldown {
		return 0, false
	}
	if !geom.Overlaps(e.Rect, target.Rect) {
		return 0, false
	}
	e.LastAttack = now

	damage := RollDamage(rng, e.MaxHP, params)
	DamagePlayer(target, damage, now)
	if onHit != nil {
		cx, cy := target.Rect.Center()
		onHit(cx, cy, damage)
	}
	return damage, target.HP <= 0
}
