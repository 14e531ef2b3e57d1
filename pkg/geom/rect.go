// pkg/geom/rect.go
package geom

import "math"

// Rect is an axis-aligned rectangle in world pixels, top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b overlap strictly on both axes.
// Rectangles that only touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Overlaps is the method form of Overlaps.
func (r Rect) Overlaps(o Rect) bool {
	return Overlaps(r, o)
}

// At returns a copy of r moved to (x, y).
func (r Rect) At(x, y float64) Rect {
	r.X, r.Y = x, y
	return r
}

// Center returns the centre point of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// CenteredAt builds a w×h rectangle whose centre is (cx, cy).
func CenteredAt(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Vec is a 2D vector, used for velocities.
type Vec struct {
	X, Y float64
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Direction returns the unit vector from (dx, dy). The length is floored
// to 1 so coincident points yield a finite (zero) vector instead of NaN.
func Direction(dx, dy float64) Vec {
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		dist = 1
	}
	return Vec{X: dx / dist, Y: dy / dist}
}
