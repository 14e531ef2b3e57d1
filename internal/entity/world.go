// internal/entity/world.go
package entity

import (
	"time"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/types"
)

// World — состояние одного раунда. Им владеет контроллер раунда, и только
// он изменяет его, один раз за тик.
type World struct {
	NextID       types.EntityID
	Profile      string
	Obstacles    []component.Obstacle
	Player       component.Player
	Enemies      []component.Enemy
	Projectiles  []component.Projectile
	Particles    []component.Particle
	Phase        component.Phase
	StartTime    time.Duration
	EndTime      time.Duration
	TotalEnemies int
}

func NewWorld(start time.Duration) *World {
	return &World{
		NextID:    1,
		Phase:     component.PhasePlaying,
		StartTime: start,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Finish moves the round into a terminal phase. Only the first transition out
// of PhasePlaying is honoured; it returns false for every later call.
func (w *World) Finish(phase component.Phase, now time.Duration) bool {
	if w.Phase != component.PhasePlaying || !phase.Terminal() {
		return false
	}
	w.Phase = phase
	w.EndTime = now
	return true
}

// Kills returns how many enemies of the round are dead.
func (w *World) Kills() int {
	return w.TotalEnemies - len(w.Enemies)
}

// Elapsed returns round time, frozen at the end time once the round is over.
func (w *World) Elapsed(now time.Duration) time.Duration {
	end := now
	if w.Phase.Terminal() {
		end = w.EndTime
	}
	if end < w.StartTime {
		return 0
	}
	return end - w.StartTime
}

// SweepProjectiles drops projectiles marked dead.
func (w *World) SweepProjectiles() {
	w.Projectiles = system.CompactProjectiles(w.Projectiles)
}

// SweepParticles drops expired particles.
func (w *World) SweepParticles() {
	w.Particles = system.CompactParticles(w.Particles)
}
