// internal/component/enemy.go
package component

import (
	"time"

	"go-arena-survival/internal/types"
	"go-arena-survival/pkg/geom"
)

// Enemy — враг ближнего боя, преследующий игрока.
type Enemy struct {
	ID             types.EntityID
	Rect           geom.Rect
	HP             int
	MaxHP          int
	Speed          float64 // pixels per tick
	AttackCooldown time.Duration
	LastAttack     time.Duration
}

// Dead reports whether the enemy should leave the active set.
func (e *Enemy) Dead() bool {
	return e.HP <= 0
}

// Shade returns the grey level used to draw the enemy. Tougher enemies are darker.
func (e *Enemy) Shade() uint8 {
	shade := 255 - float64(e.MaxHP)/10*200
	if shade < 0 {
		shade = 0
	}
	if shade > 255 {
		shade = 255
	}
	return uint8(shade)
}
