package app

import (
	"testing"
	"time"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{999 * time.Millisecond, "00:00"},
		{65 * time.Second, "01:05"},
		{10*time.Minute + 59*time.Second, "10:59"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.in); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHeadline(t *testing.T) {
	if got := Headline(component.PhaseVictory); got != "Mission Complete!" {
		t.Errorf("victory headline = %q", got)
	}
	if got := Headline(component.PhaseDefeat); got != "Game Over" {
		t.Errorf("defeat headline = %q", got)
	}
}

func TestAppendDrawablesOrder(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultTuning())
	w := g.World
	w.Projectiles = []component.Projectile{stillProjectile(g, 50, 50), stillProjectile(g, 60, 60)}
	w.Projectiles[1].Dead = true
	w.Particles = []component.Particle{{X: 1, Y: 2, Life: 50}}

	ds := g.AppendDrawables(nil)
	want := len(w.Obstacles) + 1 + len(w.Enemies) + 1 + 1
	if len(ds) != want {
		t.Fatalf("got %d drawables, want %d", len(ds), want)
	}

	last := component.KindObstacle
	for i, d := range ds {
		if d.Kind < last {
			t.Fatalf("drawable %d (%v) out of paint order", i, d.Kind)
		}
		last = d.Kind
	}
	if p := ds[len(ds)-1]; p.Kind != component.KindParticle || p.Alpha != 1 {
		t.Errorf("particle drawable = %+v", p)
	}
}

func TestSnapshotTracksRound(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultTuning())
	s := g.Snapshot(3 * time.Second)
	if s.Phase != component.PhasePlaying || s.Elapsed != 3*time.Second {
		t.Errorf("snapshot = %+v", s)
	}
	if s.HP != 100 || s.MaxHP != 100 || s.Alive != s.Total || s.Kills != 0 {
		t.Errorf("snapshot = %+v", s)
	}
}
