// internal/system/projectile.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/types"
	"go-arena-survival/pkg/geom"
)

// NewProjectile создаёт снаряд в (originX, originY), летящий к цели
// с постоянной скоростью speed пикселей за тик.
func NewProjectile(id types.EntityID, originX, originY, targetX, targetY, speed float64) component.Projectile {
	dir := geom.Direction(targetX-originX, targetY-originY)
	return component.Projectile{
		ID:       id,
		Rect:     geom.Rect{X: originX, Y: originY, W: config.ProjectileSize, H: config.ProjectileSize},
		Velocity: dir.Scale(speed),
	}
}

// MoveProjectile advances a live projectile. If the next position hits a solid
// obstacle the projectile dies where it is. Leaving bounds also kills it.
func MoveProjectile(p *component.Projectile, obstacles []component.Obstacle, bounds geom.Rect) {
	if p.Dead {
		return
	}
	next := p.Rect.At(p.Rect.X+p.Velocity.X, p.Rect.Y+p.Velocity.Y)
	if BlockedByObstacles(next, obstacles) {
		p.Dead = true
		return
	}
	p.Rect = next
	if !geom.Overlaps(p.Rect, bounds) {
		p.Dead = true
	}
}

// CompactProjectiles removes dead projectiles in place, keeping order.
func CompactProjectiles(ps []component.Projectile) []component.Projectile {
	live := ps[:0]
	for _, p := range ps {
		if !p.Dead {
			live = append(live, p)
		}
	}
	clear(ps[len(live):])
	return live
}
