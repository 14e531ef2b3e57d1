// internal/component/projectile.go
package component

import (
	"go-arena-survival/internal/types"
	"go-arena-survival/pkg/geom"
)

// Projectile представляет летящий снаряд игрока.
// Dead выставляется при попадании или столкновении; снаряд удаляется
// из активного набора только на границе следующего тика.
type Projectile struct {
	ID       types.EntityID
	Rect     geom.Rect
	Velocity geom.Vec // pixels per tick
	Dead     bool
}
