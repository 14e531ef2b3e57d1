// internal/mapgen/mapgen.go
package mapgen

import (
	"math"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/types"
	"go-arena-survival/pkg/geom"
)

// Layout — геометрия арены, в которой работает генератор.
type Layout struct {
	Width, Height float64
	Border        float64   // thickness of the fence ring
	SafeZone      geom.Rect // kept clear of obstacles and enemies
	Retries       int       // placement attempts per obstacle
	SpawnRetries  int       // placement attempts per enemy
}

// Interior returns the playable area inside the border.
func (l Layout) Interior() geom.Rect {
	return geom.Rect{X: l.Border, Y: l.Border, W: l.Width - 2*l.Border, H: l.Height - 2*l.Border}
}

// Bounds returns the whole arena rectangle.
func (l Layout) Bounds() geom.Rect {
	return geom.Rect{W: l.Width, H: l.Height}
}

// SafeZoneAround returns a size×size zone centred on the given spawn rect.
// Зона никогда не меньше самого spawn по каждой оси.
func SafeZoneAround(spawn geom.Rect, size float64) geom.Rect {
	cx, cy := spawn.Center()
	return geom.CenteredAt(cx, cy, max(size, spawn.W), max(size, spawn.H))
}

// Border returns the four fences enclosing the arena.
func Border(l Layout, newID func() types.EntityID) []component.Obstacle {
	w, h, t := l.Width, l.Height, l.Border
	rects := []geom.Rect{
		{X: 0, Y: 0, W: w, H: t},
		{X: 0, Y: h - t, W: w, H: t},
		{X: 0, Y: 0, W: t, H: h},
		{X: w - t, Y: 0, W: t, H: h},
	}
	fences := make([]component.Obstacle, 0, len(rects))
	for _, r := range rects {
		fences = append(fences, component.Obstacle{ID: newID(), Type: component.ObstacleFence, Rect: r})
	}
	return fences
}

// Rand is what the map generator draws from. *utils.PRNGService satisfies it.
type Rand interface {
	system.Rand
	ChooseWeighted(weights []int) int
}

// PickProfile chooses a density profile by weight.
func PickProfile(rng Rand, profiles []defs.Profile) defs.Profile {
	return profiles[rng.ChooseWeighted(defs.Weights(profiles))]
}

// Generate places the profile's obstacles inside the interior, appending them
// to placed. Each instance gets Retries attempts at a uniform position that
// overlaps neither an already placed obstacle nor the safe zone; an instance
// that runs out of attempts is skipped.
func Generate(rng Rand, l Layout, profile defs.Profile, placed []component.Obstacle, newID func() types.EntityID) []component.Obstacle {
	interior := l.Interior()
	for _, req := range profile.Obstacles {
		for n := 0; n < req.Count; n++ {
			r, ok := findSpot(rng, interior, req.W, req.H, l.Retries, func(c geom.Rect) bool {
				if geom.Overlaps(c, l.SafeZone) {
					return false
				}
				for i := range placed {
					if geom.Overlaps(c, placed[i].Rect) {
						return false
					}
				}
				return true
			})
			if !ok {
				continue
			}
			obs := component.Obstacle{ID: newID(), Type: req.Type, Rect: r}
			if req.Type == component.ObstacleTree {
				obs.Variant = rng.Intn(config.TreeVariants)
			}
			placed = append(placed, obs)
		}
	}
	return placed
}

// findSpot samples up to retries w×h rectangles inside area and returns the
// first one accepted by ok.
func findSpot(rng system.Rand, area geom.Rect, w, h float64, retries int, ok func(geom.Rect) bool) (geom.Rect, bool) {
	spanX, spanY := area.W-w, area.H-h
	if spanX < 0 || spanY < 0 {
		return geom.Rect{}, false
	}
	for try := 0; try < retries; try++ {
		c := geom.Rect{
			X: math.Floor(rng.FloatRange(area.X, area.X+spanX)),
			Y: math.Floor(rng.FloatRange(area.Y, area.Y+spanY)),
			W: w,
			H: h,
		}
		if ok(c) {
			return c, true
		}
	}
	return geom.Rect{}, false
}
