package entity

import (
	"testing"
	"time"

	"go-arena-survival/internal/component"
)

func TestNewEntityIDsAreUnique(t *testing.T) {
	w := NewWorld(0)
	seen := map[uint32]bool{}
	for i := 0; i < 10; i++ {
		id := uint32(w.NewEntity())
		if id == 0 || seen[id] {
			t.Fatalf("bad id %d", id)
		}
		seen[id] = true
	}
}

func TestFinishIsMonotonic(t *testing.T) {
	w := NewWorld(time.Second)
	if w.Phase != component.PhasePlaying {
		t.Fatalf("initial phase = %v", w.Phase)
	}
	if w.Finish(component.PhasePlaying, 2*time.Second) {
		t.Error("Playing is not a terminal phase")
	}
	if !w.Finish(component.PhaseVictory, 3*time.Second) {
		t.Fatal("first transition refused")
	}
	if w.Finish(component.PhaseVictory, 4*time.Second) || w.Finish(component.PhaseDefeat, 5*time.Second) {
		t.Error("second transition accepted")
	}
	if w.Phase != component.PhaseVictory || w.EndTime != 3*time.Second {
		t.Errorf("phase=%v end=%v, want victory at 3s", w.Phase, w.EndTime)
	}
}

func TestElapsedFreezesAtEnd(t *testing.T) {
	w := NewWorld(10 * time.Second)
	if got := w.Elapsed(15 * time.Second); got != 5*time.Second {
		t.Errorf("running elapsed = %v", got)
	}
	w.Finish(component.PhaseDefeat, 20*time.Second)
	if got := w.Elapsed(99 * time.Second); got != 10*time.Second {
		t.Errorf("frozen elapsed = %v, want 10s", got)
	}
	if got := NewWorld(time.Minute).Elapsed(0); got != 0 {
		t.Errorf("elapsed before start = %v", got)
	}
}

func TestKillsAndSweeps(t *testing.T) {
	w := NewWorld(0)
	w.TotalEnemies = 3
	w.Enemies = []component.Enemy{{HP: 1}}
	if w.Kills() != 2 {
		t.Errorf("kills = %d, want 2", w.Kills())
	}

	w.Projectiles = []component.Projectile{{ID: 1, Dead: true}, {ID: 2}}
	w.Particles = []component.Particle{{Life: 0}, {Life: 3}}
	w.SweepProjectiles()
	w.SweepParticles()
	if len(w.Projectiles) != 1 || w.Projectiles[0].ID != 2 {
		t.Errorf("projectiles = %+v", w.Projectiles)
	}
	if len(w.Particles) != 1 || w.Particles[0].Life != 3 {
		t.Errorf("particles = %+v", w.Particles)
	}
}
