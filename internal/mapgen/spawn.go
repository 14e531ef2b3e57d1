// internal/mapgen/spawn.go
package mapgen

import (
	"time"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/types"
	"go-arena-survival/pkg/geom"
)

// SpawnPlayer creates the player centred in the arena.
func SpawnPlayer(id types.EntityID, l Layout, t config.PlayerTuning, now time.Duration) component.Player {
	return component.Player{
		ID:         id,
		Rect:       geom.CenteredAt(l.Width/2, l.Height/2, config.PlayerSize, config.PlayerSize),
		Speed:      t.Speed,
		HP:         t.MaxHP,
		MaxHP:      t.MaxHP,
		LastDamage: now,
		LastRegen:  now,
	}
}

// SpawnEnemies places up to t.Count enemies at uniform positions inside the
// interior that are not blocked by solid obstacles and stay out of the safe
// zone. Max hp is uniform in [HPMin, HPMax]. Every enemy is ready to attack
// immediately. An enemy that runs out of attempts is skipped, so the caller
// must use len(result) as the round's enemy total.
func SpawnEnemies(rng system.Rand, l Layout, t config.EnemyTuning, obstacles []component.Obstacle, now time.Duration, newID func() types.EntityID) []component.Enemy {
	enemies := make([]component.Enemy, 0, t.Count)
	for n := 0; n < t.Count; n++ {
		r, ok := findSpot(rng, l.Interior(), config.EnemySize, config.EnemySize, l.SpawnRetries, func(c geom.Rect) bool {
			return !geom.Overlaps(c, l.SafeZone) && !system.BlockedByObstacles(c, obstacles)
		})
		if !ok {
			continue
		}
		hp := rng.IntRange(t.HPMin, t.HPMax)
		enemies = append(enemies, component.Enemy{
			ID:             newID(),
			Rect:           r,
			HP:             hp,
			MaxHP:          hp,
			Speed:          t.Speed,
			AttackCooldown: t.AttackCooldown,
			LastAttack:     now - t.AttackCooldown,
		})
	}
	return enemies
}
