package system

import (
	"math"
	"testing"

	"go-arena-survival/internal/component"
	"go-arena-survival/pkg/geom"
)

var arena = geom.Rect{X: 0, Y: 0, W: 800, H: 600}

func TestNewProjectileVelocity(t *testing.T) {
	p := NewProjectile(7, 100, 100, 400, 500, 5)
	if p.ID != 7 || p.Dead {
		t.Fatalf("unexpected projectile %+v", p)
	}
	if math.Abs(p.Velocity.Len()-5) > 1e-9 {
		t.Errorf("speed = %v, want 5", p.Velocity.Len())
	}
	if math.Abs(p.Velocity.X-3) > 1e-9 || math.Abs(p.Velocity.Y-4) > 1e-9 {
		t.Errorf("velocity = %+v, want {3 4}", p.Velocity)
	}
	if p.Rect.X != 100 || p.Rect.Y != 100 || p.Rect.W != 6 || p.Rect.H != 6 {
		t.Errorf("rect = %+v", p.Rect)
	}
}

func TestNewProjectileAtOwnPosition(t *testing.T) {
	p := NewProjectile(1, 100, 100, 100, 100, 5)
	if math.IsNaN(p.Velocity.X) || math.IsNaN(p.Velocity.Y) {
		t.Fatalf("velocity is NaN: %+v", p.Velocity)
	}
}

func TestProjectileStopsAtWall(t *testing.T) {
	// wall 50 units ahead of the projectile's leading edge
	wall := solid(156, 0, 32, 600)
	obstacles := []component.Obstacle{wall}
	p := NewProjectile(1, 100, 100, 500, 100, 5)

	ticks := 0
	for !p.Dead && ticks < 100 {
		MoveProjectile(&p, obstacles, arena)
		ticks++
		if geom.Overlaps(p.Rect, wall.Rect) {
			t.Fatalf("tick %d: projectile inside wall at %+v", ticks, p.Rect)
		}
	}
	if !p.Dead {
		t.Fatal("projectile never died")
	}
	if p.Rect.X+p.Rect.W > wall.Rect.X {
		t.Errorf("projectile passed wall boundary: %+v", p.Rect)
	}
	if p.Rect.X != 150 {
		t.Errorf("stopped at x=%v, want 150", p.Rect.X)
	}

	before := p.Rect
	MoveProjectile(&p, obstacles, arena)
	if p.Rect != before {
		t.Error("dead projectile moved")
	}
}

func TestProjectileIgnoresFlowers(t *testing.T) {
	p := NewProjectile(1, 100, 100, 500, 100, 5)
	MoveProjectile(&p, []component.Obstacle{flower(100, 90, 64, 64)}, arena)
	if p.Dead || p.Rect.X != 105 {
		t.Errorf("flower stopped projectile: %+v", p)
	}
}

func TestProjectileLeavingArenaDies(t *testing.T) {
	p := NewProjectile(1, 797, 100, 900, 100, 5)
	MoveProjectile(&p, nil, arena)
	if !p.Dead {
		t.Error("projectile outside arena should die")
	}
}

func TestCompactProjectiles(t *testing.T) {
	ps := []component.Projectile{{ID: 1}, {ID: 2, Dead: true}, {ID: 3}, {ID: 4, Dead: true}}
	live := CompactProjectiles(ps)
	if len(live) != 2 || live[0].ID != 1 || live[1].ID != 3 {
		t.Errorf("live = %+v", live)
	}
}
