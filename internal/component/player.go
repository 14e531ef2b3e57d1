// internal/component/player.go
package component

import (
	"time"

	"go-arena-survival/internal/types"
	"go-arena-survival/pkg/geom"
)

// Player хранит состояние управляемого персонажа.
// HP всегда в диапазоне [0, MaxHP].
type Player struct {
	ID         types.EntityID
	Rect       geom.Rect
	Speed      float64 // pixels per tick
	HP         int
	MaxHP      int
	LastDamage time.Duration // clock reading of the last hit taken
	LastRegen  time.Duration // clock reading of the last regen step
}
