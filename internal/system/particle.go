// internal/system/particle.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/pkg/geom"
)

// EffectSize returns how many particles an effect of the given damage spawns.
func EffectSize(damage int) int {
	n := config.ParticleBaseCount + damage
	if n > config.ParticleMaxCount {
		n = config.ParticleMaxCount
	}
	if n < 0 {
		n = 0
	}
	return n
}

// SpawnEffect appends a burst of particles at (x, y) to dst and returns it.
func SpawnEffect(dst []component.Particle, rng Rand, x, y float64, damage int) []component.Particle {
	for i := EffectSize(damage); i > 0; i-- {
		dst = append(dst, component.Particle{
			X: x,
			Y: y,
			Velocity: geom.Vec{
				X: rng.FloatRange(-config.ParticleSpread/2, config.ParticleSpread/2),
				Y: rng.FloatRange(-config.ParticleSpread/2, config.ParticleSpread/2),
			},
			Life: rng.FloatRange(config.ParticleLifeMin, config.ParticleLifeMin+config.ParticleLifeSpread),
		})
	}
	return dst
}

// TickParticle integrates position and burns one tick of life.
func TickParticle(p *component.Particle) {
	p.X += p.Velocity.X
	p.Y += p.Velocity.Y
	p.Life--
}

// ParticleAlpha maps remaining life to draw opacity.
func ParticleAlpha(p *component.Particle) float64 {
	a := p.Life / (config.ParticleLifeMin + config.ParticleLifeSpread)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// CompactParticles removes expired particles in place, keeping order.
func CompactParticles(ps []component.Particle) []component.Particle {
	live := ps[:0]
	for _, p := range ps {
		if !p.Expired() {
			live = append(live, p)
		}
	}
	clear(ps[len(live):])
	return live
}
