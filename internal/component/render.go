// internal/component/render.go
package component

import "go-arena-survival/pkg/geom"

// Kind — тег сущности для отрисовки.
type Kind int

const (
	KindObstacle Kind = iota
	KindPlayer
	KindEnemy
	KindProjectile
	KindParticle
)

// Drawable — данные, которые рендерер читает для одной сущности.
// Заполняется проекцией мира, рендерер ничего не изменяет.
type Drawable struct {
	Kind     Kind
	Obstacle ObstacleType // only for KindObstacle
	Variant  int
	Rect     geom.Rect
	Shade    uint8   // enemy grey level
	Health   float64 // enemy hp fraction in [0, 1]
	Alpha    float64 // particle opacity in [0, 1]
}
