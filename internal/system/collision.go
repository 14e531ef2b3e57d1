// internal/system/collision.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/pkg/geom"
)

// Rand is the randomness the systems draw from.
// *utils.PRNGService удовлетворяет этому интерфейсу.
type Rand interface {
	Intn(n int) int
	Float64() float64
	IntRange(min, max int) int
	FloatRange(min, max float64) float64
}

// BlockedByObstacles reports whether r overlaps any solid obstacle.
// Walkable obstacles never block, whatever their geometry.
func BlockedByObstacles(r geom.Rect, obstacles []component.Obstacle) bool {
	for i := range obstacles {
		if obstacles[i].Type.Walkable() {
			continue
		}
		if geom.Overlaps(r, obstacles[i].Rect) {
			return true
		}
	}
	return false
}

// moveGated applies dx then dy to r, each axis only if the moved rect is not
// blocked. Resolving the axes separately lets a blocked diagonal slide along
// the free axis.
func moveGated(r geom.Rect, dx, dy float64, obstacles []component.Obstacle) geom.Rect {
	if dx != 0 {
		if next := r.At(r.X+dx, r.Y); !BlockedByObstacles(next, obstacles) {
			r = next
		}
	}
	if dy != 0 {
		if next := r.At(r.X, r.Y+dy); !BlockedByObstacles(next, obstacles) {
			r = next
		}
	}
	return r
}
