// internal/system/combat.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/types"
	"go-arena-survival/pkg/geom"
)

// Hit describes one projectile striking one enemy.
type Hit struct {
	ProjectileID types.EntityID
	EnemyID      types.EntityID
	X, Y         float64 // projectile centre
	Damage       int
	EnemyHP      int
}

// Kill describes an enemy destroyed during resolution.
type Kill struct {
	EnemyID types.EntityID
	X, Y    float64 // enemy centre
	MaxHP   int
}

// CombatResult: итог одного прохода разрешения боя.
type CombatResult struct {
	Hits  []Hit
	Kills []Kill
}

// ApplyDamage снимает здоровье врага, не опуская его ниже нуля.
func ApplyDamage(e *component.Enemy, damage int) {
	if damage < 0 {
		damage = 0
	}
	e.HP -= damage
	if e.HP < 0 {
		e.HP = 0
	}
}

// ResolveCombat checks every live projectile against every live enemy.
// A projectile hits at most one enemy per pass: the first overlapping one.
// Killed enemies are removed in one batch after the pass; hit projectiles are
// only marked dead. onEffect receives a small burst per hit and a burst sized
// by max hp per kill. Returns the surviving enemies.
func ResolveCombat(projectiles []component.Projectile, enemies []component.Enemy, chip int, onEffect EffectFunc) ([]component.Enemy, CombatResult) {
	var result CombatResult

	for pi := range projectiles {
		p := &projectiles[pi]
		if p.Dead {
			continue
		}
		for ei := range enemies {
			e := &enemies[ei]
			if e.Dead() || !geom.Overlaps(p.Rect, e.Rect) {
				continue
			}

			px, py := p.Rect.Center()
			if onEffect != nil {
				onEffect(px, py, chip)
			}
			ApplyDamage(e, chip)
			p.Dead = true
			result.Hits = append(result.Hits, Hit{
				ProjectileID: p.ID,
				EnemyID:      e.ID,
				X:            px,
				Y:            py,
				Damage:       chip,
				EnemyHP:      e.HP,
			})

			if e.Dead() {
				ex, ey := e.Rect.Center()
				if onEffect != nil {
					onEffect(ex, ey, e.MaxHP)
				}
				result.Kills = append(result.Kills, Kill{EnemyID: e.ID, X: ex, Y: ey, MaxHP: e.MaxHP})
			}
			break
		}
	}

	if len(result.Kills) == 0 {
		return enemies, result
	}
	return CompactEnemies(enemies), result
}

// CompactEnemies removes dead enemies in place, keeping order.
func CompactEnemies(es []component.Enemy) []component.Enemy {
	live := es[:0]
	for _, e := range es {
		if !e.Dead() {
			live = append(live, e)
		}
	}
	clear(es[len(live):])
	return live
}
