package system

import (
	"testing"

	"go-arena-survival/internal/component"
)

func TestEffectSize(t *testing.T) {
	tests := []struct{ damage, want int }{
		{0, 5},
		{2, 7},
		{10, 15},
		{15, 20},
		{100, 20},
		{-10, 0},
	}
	for _, tt := range tests {
		if got := EffectSize(tt.damage); got != tt.want {
			t.Errorf("EffectSize(%d) = %d, want %d", tt.damage, got, tt.want)
		}
	}
}

func TestSpawnEffect(t *testing.T) {
	existing := []component.Particle{{X: 1, Life: 3}}
	rng := &stubRand{floats: []float64{0, 0.999, 0.5}}
	ps := SpawnEffect(existing, rng, 50, 60, 2)

	if len(ps) != 8 {
		t.Fatalf("len = %d, want 1 + 7", len(ps))
	}
	if ps[0].X != 1 {
		t.Error("existing particle overwritten")
	}
	for _, p := range ps[1:] {
		if p.X != 50 || p.Y != 60 {
			t.Errorf("particle at (%v, %v), want origin", p.X, p.Y)
		}
		if p.Velocity.X < -2 || p.Velocity.X >= 2 || p.Velocity.Y < -2 || p.Velocity.Y >= 2 {
			t.Errorf("velocity out of range: %+v", p.Velocity)
		}
		if p.Life < 30 || p.Life >= 50 {
			t.Errorf("life out of range: %v", p.Life)
		}
	}
}

func TestSpawnEffectLowestRoll(t *testing.T) {
	ps := SpawnEffect(nil, &stubRand{floats: []float64{0}}, 0, 0, 0)
	if len(ps) != 5 {
		t.Fatalf("len = %d, want 5", len(ps))
	}
	for _, p := range ps {
		if p.Velocity.X != -2 || p.Velocity.Y != -2 || p.Life != 30 {
			t.Errorf("particle = %+v, want velocity (-2, -2) and life 30", p)
		}
	}
}

func TestTickParticle(t *testing.T) {
	p := component.Particle{X: 10, Y: 10, Life: 2}
	p.Velocity.X, p.Velocity.Y = 1, -1
	TickParticle(&p)
	if p.X != 11 || p.Y != 9 || p.Life != 1 || p.Expired() {
		t.Fatalf("after one tick: %+v", p)
	}
	TickParticle(&p)
	if !p.Expired() {
		t.Error("particle should be expired")
	}
}

func TestParticleAlpha(t *testing.T) {
	if a := ParticleAlpha(&component.Particle{Life: 50}); a != 1 {
		t.Errorf("alpha at full life = %v", a)
	}
	if a := ParticleAlpha(&component.Particle{Life: 25}); a != 0.5 {
		t.Errorf("alpha at half life = %v", a)
	}
	if a := ParticleAlpha(&component.Particle{Life: -1}); a != 0 {
		t.Errorf("alpha after death = %v", a)
	}
}

func TestCompactParticles(t *testing.T) {
	ps := []component.Particle{{X: 1, Life: 1}, {X: 2, Life: 0}, {X: 3, Life: -0.5}, {X: 4, Life: 10}}
	live := CompactParticles(ps)
	if len(live) != 2 || live[0].X != 1 || live[1].X != 4 {
		t.Errorf("live = %+v", live)
	}
}
