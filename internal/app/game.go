// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"time"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/mapgen"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/utils"
	"go-arena-survival/pkg/geom"

	"github.com/google/uuid"
)

// Game — контроллер раунда. Владеет миром и единственный изменяет его,
// один проход Tick за кадр.
type Game struct {
	World   *entity.World
	Tuning  config.Tuning
	Layout  mapgen.Layout
	Rng     *utils.PRNGService
	Events  *event.Dispatcher
	Logger  *log.Logger
	RoundID string

	profile  *defs.Profile // fixed profile, nil means pick one per round
	attack   system.AttackParams
	lastShot time.Duration
}

// NewGame creates a round controller. The first round starts on Reset or on
// the first Tick. events and logger may be nil.
func NewGame(tuning config.Tuning, rng *utils.PRNGService, events *event.Dispatcher, logger *log.Logger) (*Game, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		Tuning: tuning,
		Rng:    rng,
		Events: events,
		Logger: logger,
		attack: system.AttackParams{
			DamageMin:    tuning.Enemy.DamageMin,
			DamageMax:    tuning.Enemy.DamageMax,
			MaxHitDamage: tuning.Enemy.MaxHitDamage,
		},
	}

	if tuning.Profile != "" {
		p, ok := defs.ProfileByName(tuning.Profile)
		if !ok {
			return nil, fmt.Errorf("unknown map profile %q", tuning.Profile)
		}
		g.profile = &p
	}

	spawn := geom.CenteredAt(config.ScreenWidth/2, config.ScreenHeight/2, config.PlayerSize, config.PlayerSize)
	g.Layout = mapgen.Layout{
		Width:        config.ScreenWidth,
		Height:       config.ScreenHeight,
		Border:       config.BorderThickness,
		SafeZone:     mapgen.SafeZoneAround(spawn, tuning.Map.SafeZone),
		Retries:      tuning.Map.PlacementRetries,
		SpawnRetries: tuning.Map.SpawnRetries,
	}
	return g, nil
}

// Reset discards the current round and starts a fresh one at now.
func (g *Game) Reset(now time.Duration) {
	w := entity.NewWorld(now)

	profile := g.pickProfile()
	w.Profile = profile.Name
	w.Obstacles = mapgen.Generate(g.Rng, g.Layout, profile, mapgen.Border(g.Layout, w.NewEntity), w.NewEntity)
	w.Player = mapgen.SpawnPlayer(w.NewEntity(), g.Layout, g.Tuning.Player, now)
	w.Enemies = mapgen.SpawnEnemies(g.Rng, g.Layout, g.Tuning.Enemy, w.Obstacles, now, w.NewEntity)
	w.TotalEnemies = len(w.Enemies)

	g.World = w
	g.RoundID = uuid.NewString()
	g.lastShot = now - g.Tuning.Weapon.FireInterval

	if w.TotalEnemies < g.Tuning.Enemy.Count {
		g.Logger.Printf("round %s: only %d of %d enemies found room", g.RoundID, w.TotalEnemies, g.Tuning.Enemy.Count)
	}
	g.Logger.Printf("round %s started: profile=%s obstacles=%d enemies=%d", g.RoundID, w.Profile, len(w.Obstacles), w.TotalEnemies)
	g.Events.Dispatch(event.Event{Type: event.RoundStarted, Data: g.roundData(now)})
}

func (g *Game) pickProfile() defs.Profile {
	if g.profile != nil {
		return *g.profile
	}
	return mapgen.PickProfile(g.Rng, defs.Profiles)
}

// Tick advances the round by one step. now must be read once per tick from a
// monotonic clock; in is the input sampled for this tick.
func (g *Game) Tick(now time.Duration, in component.Input) {
	if g.World == nil {
		g.Reset(now)
	}
	w := g.World

	// 1. movement
	if w.Phase == component.PhasePlaying {
		system.MovePlayer(&w.Player, in, w.Obstacles)
		system.RegenPlayer(&w.Player, now, g.Tuning.Player.RegenDelay, g.Tuning.Player.RegenInterval)
		for i := range w.Enemies {
			system.MoveEnemy(&w.Enemies[i], w.Player.Rect, w.Obstacles)
		}
		bounds := g.Layout.Bounds()
		for i := range w.Projectiles {
			system.MoveProjectile(&w.Projectiles[i], w.Obstacles, bounds)
		}
	}

	// 2. particles keep fading after the round ends
	for i := range w.Particles {
		system.TickParticle(&w.Particles[i])
	}
	w.SweepParticles()

	// 3. fire
	if w.Phase == component.PhasePlaying && in.Firing && now-g.lastShot >= g.Tuning.Weapon.FireInterval {
		g.fire(now, in.PointerX, in.PointerY)
	}

	// 4.
	w.SweepProjectiles()

	if w.Phase != component.PhasePlaying {
		return
	}

	// 5. combat
	g.resolveCombat()

	// 6. melee
	for i := range w.Enemies {
		e := &w.Enemies[i]
		_, lethal := system.TryAttack(e, now, &w.Player, g.Rng, g.attack, func(x, y float64, damage int) {
			g.spawnEffect(x, y, damage)
			g.Events.Dispatch(event.Event{Type: event.PlayerHit, Data: event.HitData{
				TargetID: w.Player.ID,
				X:        x,
				Y:        y,
				Damage:   damage,
				HP:       w.Player.HP,
			}})
		})
		if lethal {
			g.finish(component.PhaseDefeat, now)
			break
		}
	}

	// 7.
	if w.Phase == component.PhasePlaying && len(w.Enemies) == 0 {
		g.finish(component.PhaseVictory, now)
	}
}

func (g *Game) fire(now time.Duration, targetX, targetY float64) {
	w := g.World
	cx, cy := w.Player.Rect.Center()
	p := system.NewProjectile(w.NewEntity(), cx, cy, targetX, targetY, g.Tuning.Weapon.ProjectileSpeed)
	w.Projectiles = append(w.Projectiles, p)
	g.lastShot = now
	g.Events.Dispatch(event.Event{Type: event.ProjectileFired, Data: p.ID})
}

func (g *Game) resolveCombat() {
	w := g.World
	enemies, result := system.ResolveCombat(w.Projectiles, w.Enemies, g.Tuning.Weapon.ChipDamage, g.spawnEffect)
	w.Enemies = enemies

	for _, h := range result.Hits {
		g.Events.Dispatch(event.Event{Type: event.EnemyHit, Data: event.HitData{
			TargetID: h.EnemyID,
			X:        h.X,
			Y:        h.Y,
			Damage:   h.Damage,
			HP:       h.EnemyHP,
		}})
	}
	for _, k := range result.Kills {
		g.Events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.HitData{
			TargetID: k.EnemyID,
			X:        k.X,
			Y:        k.Y,
			Damage:   k.MaxHP,
		}})
	}
}

func (g *Game) spawnEffect(x, y float64, damage int) {
	g.World.Particles = system.SpawnEffect(g.World.Particles, g.Rng, x, y, damage)
}

func (g *Game) finish(phase component.Phase, now time.Duration) {
	if !g.World.Finish(phase, now) {
		return
	}
	data := g.roundData(now)
	g.Logger.Printf("round %s ended: %s after %s, kills %d/%d", g.RoundID, phase, FormatElapsed(data.Elapsed), data.Kills, data.Total)

	t := event.RoundWon
	if phase == component.PhaseDefeat {
		t = event.RoundLost
	}
	g.Events.Dispatch(event.Event{Type: t, Data: data})
}

func (g *Game) roundData(now time.Duration) event.RoundData {
	w := g.World
	return event.RoundData{
		RoundID: g.RoundID,
		Profile: w.Profile,
		Elapsed: w.Elapsed(now),
		Kills:   w.Kills(),
		Total:   w.TotalEnemies,
	}
}
