// internal/component/obstacle.go
package component

import (
	"go-arena-survival/internal/types"
	"go-arena-survival/pkg/geom"
)

// ObstacleType — вид статичного объекта карты.
type ObstacleType int

const (
	ObstacleTree ObstacleType = iota
	ObstacleFence
	ObstacleFlower
	ObstacleLake
)

func (t ObstacleType) String() string {
	switch t {
	case ObstacleTree:
		return "tree"
	case ObstacleFence:
		return "fence"
	case ObstacleFlower:
		return "flower"
	case ObstacleLake:
		return "lake"
	}
	return "unknown"
}

// Walkable reports whether entities and projectiles pass through this type.
// Only flowers are walkable.
func (t ObstacleType) Walkable() bool {
	return t == ObstacleFlower
}

// Obstacle — статичный объект карты. Не изменяется в течение раунда.
type Obstacle struct {
	ID      types.EntityID
	Type    ObstacleType
	Rect    geom.Rect
	Variant int // texture variant for trees, picked once at generation
}
