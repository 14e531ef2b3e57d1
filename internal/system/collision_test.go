package system

import (
	"testing"

	"go-arena-survival/internal/component"
	"go-arena-survival/pkg/geom"
)

func TestBlockedByObstacles(t *testing.T) {
	candidate := geom.Rect{X: 10, Y: 10, W: 10, H: 10}
	tests := []struct {
		name      string
		obstacles []component.Obstacle
		want      bool
	}{
		{"empty", nil, false},
		{"solid overlap", []component.Obstacle{solid(15, 15, 10, 10)}, true},
		{"solid touching", []component.Obstacle{solid(20, 10, 10, 10)}, false},
		{"flower overlap", []component.Obstacle{flower(10, 10, 10, 10)}, false},
		{"flower covering everything", []component.Obstacle{flower(0, 0, 1000, 1000)}, false},
		{"flower then solid", []component.Obstacle{flower(10, 10, 10, 10), solid(0, 0, 11, 11)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockedByObstacles(candidate, tt.obstacles); got != tt.want {
				t.Errorf("BlockedByObstacles = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEveryNonFlowerTypeIsSolid(t *testing.T) {
	r := geom.Rect{X: 0, Y: 0, W: 10, H: 10}
	for _, typ := range []component.ObstacleType{component.ObstacleTree, component.ObstacleFence, component.ObstacleLake} {
		obs := []component.Obstacle{{Type: typ, Rect: r}}
		if !BlockedByObstacles(r, obs) {
			t.Errorf("%s should block", typ)
		}
	}
}
