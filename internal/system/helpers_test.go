package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/pkg/geom"
)

// stubRand returns scripted values, then repeats the last one.
type stubRand struct {
	floats []float64
	ints   []int
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *stubRand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *stubRand) FloatRange(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

func solid(x, y, w, h float64) component.Obstacle {
	return component.Obstacle{Type: component.ObstacleFence, Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

func flower(x, y, w, h float64) component.Obstacle {
	return component.Obstacle{Type: component.ObstacleFlower, Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

func newTestPlayer(x, y float64) component.Player {
	return component.Player{
		Rect:  geom.Rect{X: x, Y: y, W: 32, H: 32},
		Speed: 2,
		HP:    100,
		MaxHP: 100,
	}
}
