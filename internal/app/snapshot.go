// internal/app/snapshot.go
package app

import (
	"fmt"
	"time"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/system"
	"go-arena-survival/pkg/geom"
)

// Snapshot — данные раунда для HUD, только для чтения.
type Snapshot struct {
	Phase   component.Phase
	HP      int
	MaxHP   int
	Alive   int
	Total   int
	Kills   int
	Elapsed time.Duration
	RoundID string
	Profile string
}

// Snapshot returns the round state a HUD needs at now.
func (g *Game) Snapshot(now time.Duration) Snapshot {
	w := g.World
	if w == nil {
		return Snapshot{}
	}
	return Snapshot{
		Phase:   w.Phase,
		HP:      w.Player.HP,
		MaxHP:   w.Player.MaxHP,
		Alive:   len(w.Enemies),
		Total:   w.TotalEnemies,
		Kills:   w.Kills(),
		Elapsed: w.Elapsed(now),
		RoundID: g.RoundID,
		Profile: w.Profile,
	}
}

// Headline returns the end-of-round title for a terminal phase.
func Headline(phase component.Phase) string {
	if phase == component.PhaseVictory {
		return "Mission Complete!"
	}
	return "Game Over"
}

// FormatElapsed formats round time as mm:ss.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// AppendDrawables projects the world into draw records, appending them to dst
// in paint order: obstacles, player, enemies, projectiles, particles.
func (g *Game) AppendDrawables(dst []component.Drawable) []component.Drawable {
	w := g.World
	if w == nil {
		return dst
	}
	for _, o := range w.Obstacles {
		dst = append(dst, component.Drawable{Kind: component.KindObstacle, Obstacle: o.Type, Variant: o.Variant, Rect: o.Rect})
	}
	dst = append(dst, component.Drawable{Kind: component.KindPlayer, Rect: w.Player.Rect})
	for i := range w.Enemies {
		e := &w.Enemies[i]
		dst = append(dst, component.Drawable{
			Kind:   component.KindEnemy,
			Rect:   e.Rect,
			Shade:  e.Shade(),
			Health: float64(e.HP) / float64(max(e.MaxHP, 1)),
		})
	}
	for _, p := range w.Projectiles {
		if p.Dead {
			continue
		}
		dst = append(dst, component.Drawable{Kind: component.KindProjectile, Rect: p.Rect})
	}
	for i := range w.Particles {
		p := &w.Particles[i]
		dst = append(dst, component.Drawable{
			Kind:  component.KindParticle,
			Rect:  geom.Rect{X: p.X, Y: p.Y, W: config.ParticleSize, H: config.ParticleSize},
			Alpha: system.ParticleAlpha(p),
		})
	}
	return dst
}
