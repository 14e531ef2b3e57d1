package mapgen

import (
	"testing"
	"time"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
	"go-arena-survival/pkg/geom"
)

func testLayout() Layout {
	spawn := geom.CenteredAt(400, 300, config.PlayerSize, config.PlayerSize)
	return Layout{
		Width:        800,
		Height:       600,
		Border:       32,
		SafeZone:     SafeZoneAround(spawn, 160),
		Retries:      50,
		SpawnRetries: 200,
	}
}

func idGen() func() types.EntityID {
	var next types.EntityID
	return func() types.EntityID {
		next++
		return next
	}
}

func TestBorderEnclosesArena(t *testing.T) {
	l := testLayout()
	fences := Border(l, idGen())
	if len(fences) != 4 {
		t.Fatalf("got %d fences", len(fences))
	}
	for _, f := range fences {
		if f.Type != component.ObstacleFence {
			t.Errorf("border piece is %s", f.Type)
		}
	}
	// anything poking outside the interior hits the border
	outside := []geom.Rect{{X: 10, Y: 300, W: 28, H: 28}, {X: 780, Y: 300, W: 28, H: 28}, {X: 400, Y: 0, W: 28, H: 28}, {X: 400, Y: 590, W: 28, H: 28}}
	for _, r := range outside {
		if !system.BlockedByObstacles(r, fences) {
			t.Errorf("%+v not blocked by border", r)
		}
	}
	if system.BlockedByObstacles(l.Interior(), fences) {
		t.Error("interior overlaps border")
	}
}

func TestGenerateRespectsSafeZoneAndOverlap(t *testing.T) {
	l := testLayout()
	for seed := int64(1); seed <= 20; seed++ {
		rng := utils.NewPRNGService(seed)
		newID := idGen()
		for _, profile := range defs.Profiles {
			placed := Generate(rng, l, profile, Border(l, newID), newID)
			interior := l.Interior()
			for i, a := range placed[4:] {
				if geom.Overlaps(a.Rect, l.SafeZone) {
					t.Fatalf("seed %d %s: obstacle %+v in safe zone", seed, profile.Name, a)
				}
				if a.Rect.X < interior.X || a.Rect.Y < interior.Y ||
					a.Rect.X+a.Rect.W > interior.X+interior.W || a.Rect.Y+a.Rect.H > interior.Y+interior.H {
					t.Fatalf("seed %d %s: obstacle %+v outside interior", seed, profile.Name, a)
				}
				for _, b := range placed[4+i+1:] {
					if geom.Overlaps(a.Rect, b.Rect) {
						t.Fatalf("seed %d %s: %+v overlaps %+v", seed, profile.Name, a, b)
					}
				}
			}
		}
	}
}

func TestGenerateNeverBlocksSpawn(t *testing.T) {
	l := testLayout()
	spawn := geom.CenteredAt(400, 300, config.PlayerSize, config.PlayerSize)
	for seed := int64(1); seed <= 50; seed++ {
		rng := utils.NewPRNGService(seed)
		newID := idGen()
		obstacles := Generate(rng, l, PickProfile(rng, defs.Profiles), Border(l, newID), newID)
		if system.BlockedByObstacles(spawn, obstacles) {
			t.Fatalf("seed %d: spawn blocked", seed)
		}
	}
}

func TestSafeZoneAroundCoversSpawn(t *testing.T) {
	spawn := geom.CenteredAt(400, 300, config.PlayerSize, config.PlayerSize)
	for _, size := range []float64{0, 20, config.PlayerSize, 160} {
		z := SafeZoneAround(spawn, size)
		if z.X > spawn.X || z.Y > spawn.Y || z.X+z.W < spawn.X+spawn.W || z.Y+z.H < spawn.Y+spawn.H {
			t.Errorf("size %v: zone %+v does not cover spawn %+v", size, z, spawn)
		}
	}
}

func TestGenerateTinySafeZoneKeepsSpawnClear(t *testing.T) {
	l := testLayout()
	spawn := geom.CenteredAt(400, 300, config.PlayerSize, config.PlayerSize)
	l.SafeZone = SafeZoneAround(spawn, 0)
	forest, ok := defs.ProfileByName("forest")
	if !ok {
		t.Fatal("forest profile missing")
	}
	for seed := int64(1); seed <= 100; seed++ {
		rng := utils.NewPRNGService(seed)
		newID := idGen()
		obstacles := Generate(rng, l, forest, Border(l, newID), newID)
		if system.BlockedByObstacles(spawn, obstacles) {
			t.Fatalf("seed %d: spawn blocked", seed)
		}
		for _, e := range SpawnEnemies(rng, l, config.DefaultTuning().Enemy, obstacles, 0, newID) {
			if geom.Overlaps(e.Rect, spawn) {
				t.Fatalf("seed %d: enemy spawned on the player", seed)
			}
		}
	}
}

func TestGenerateSkipsWhenRetriesExhausted(t *testing.T) {
	l := testLayout()
	profile := defs.Profile{
		Name: "crowded",
		Obstacles: []defs.ObstacleRequest{
			// at most one fits above and one below the safe zone
			{Type: component.ObstacleLake, W: 700, H: 150, Count: 5},
			// never fits at all
			{Type: component.ObstacleTree, W: 2000, H: 64, Count: 3},
		},
	}
	var placed []component.Obstacle
	for seed := int64(1); seed <= 5; seed++ {
		placed = Generate(utils.NewPRNGService(seed), l, profile, nil, idGen())
		if len(placed) > 2 {
			t.Fatalf("seed %d: placed %d obstacles, at most 2 fit", seed, len(placed))
		}
		for _, o := range placed {
			if o.Type == component.ObstacleTree {
				t.Fatalf("oversized tree was placed: %+v", o)
			}
		}
	}
}

func TestGenerateTreeVariants(t *testing.T) {
	l := testLayout()
	profile, _ := defs.ProfileByName("forest")
	placed := Generate(utils.NewPRNGService(9), l, profile, nil, idGen())
	for _, o := range placed {
		if o.Variant < 0 || o.Variant >= config.TreeVariants {
			t.Errorf("variant %d out of range", o.Variant)
		}
		if o.Type != component.ObstacleTree && o.Variant != 0 {
			t.Errorf("%s has a variant", o.Type)
		}
	}
}

func TestPickProfileCoversAll(t *testing.T) {
	rng := utils.NewPRNGService(4)
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[PickProfile(rng, defs.Profiles).Name] = true
	}
	for _, p := range defs.Profiles {
		if !seen[p.Name] {
			t.Errorf("profile %s never picked", p.Name)
		}
	}
}

func TestSpawnPlayer(t *testing.T) {
	tun := config.DefaultTuning().Player
	p := SpawnPlayer(1, testLayout(), tun, 3*time.Second)
	if p.Rect.X != 384 || p.Rect.Y != 284 {
		t.Errorf("player at (%v, %v), want (384, 284)", p.Rect.X, p.Rect.Y)
	}
	if p.HP != tun.MaxHP || p.MaxHP != tun.MaxHP || p.LastDamage != 3*time.Second {
		t.Errorf("player = %+v", p)
	}
}

func TestSpawnEnemies(t *testing.T) {
	l := testLayout()
	tun := config.DefaultTuning().Enemy
	rng := utils.NewPRNGService(11)
	newID := idGen()
	obstacles := Generate(rng, l, defs.Profiles[1], Border(l, newID), newID)

	enemies := SpawnEnemies(rng, l, tun, obstacles, 5*time.Second, newID)
	if len(enemies) != tun.Count {
		t.Fatalf("spawned %d enemies, want %d", len(enemies), tun.Count)
	}
	for _, e := range enemies {
		if system.BlockedByObstacles(e.Rect, obstacles) {
			t.Errorf("enemy spawned inside obstacle: %+v", e.Rect)
		}
		if geom.Overlaps(e.Rect, l.SafeZone) {
			t.Errorf("enemy spawned in safe zone: %+v", e.Rect)
		}
		if e.MaxHP < tun.HPMin || e.MaxHP > tun.HPMax || e.HP != e.MaxHP {
			t.Errorf("bad hp %d/%d", e.HP, e.MaxHP)
		}
		if 5*time.Second-e.LastAttack < e.AttackCooldown {
			t.Errorf("enemy not ready to attack: %+v", e)
		}
	}
}

func TestSpawnEnemiesFixedHP(t *testing.T) {
	tun := config.DefaultTuning().Enemy
	tun.HPMin, tun.HPMax = 6, 6
	for _, e := range SpawnEnemies(utils.NewPRNGService(3), testLayout(), tun, nil, 0, idGen()) {
		if e.HP != 6 || e.MaxHP != 6 {
			t.Errorf("hp = %d/%d, want 6/6", e.HP, e.MaxHP)
		}
	}
}

func TestSpawnEnemiesNoRoom(t *testing.T) {
	l := testLayout()
	l.SafeZone = l.Interior() // the whole arena is protected
	enemies := SpawnEnemies(utils.NewPRNGService(1), l, config.DefaultTuning().Enemy, nil, 0, idGen())
	if len(enemies) != 0 {
		t.Errorf("spawned %d enemies with no free room", len(enemies))
	}
}
