// internal/component/particle.go
package component

import "go-arena-survival/pkg/geom"

// Particle — косметическая частица эффекта крови.
type Particle struct {
	X, Y     float64
	Velocity geom.Vec
	Life     float64 // remaining life in ticks
}

// Expired reports whether the particle should be removed.
func (p *Particle) Expired() bool {
	return p.Life <= 0
}
