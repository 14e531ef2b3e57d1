// internal/event/types.go
package event

import (
	"time"

	"go-arena-survival/internal/types"
)

const (
	RoundStarted    EventType = "RoundStarted"    // Раунд начался
	ProjectileFired EventType = "ProjectileFired" // Игрок выстрелил
	EnemyHit        EventType = "EnemyHit"        // Снаряд попал во врага
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен
	PlayerHit       EventType = "PlayerHit"       // Враг ударил игрока
	RoundWon        EventType = "RoundWon"        // Все враги мертвы
	RoundLost       EventType = "RoundLost"       // Здоровье игрока кончилось
)

// RoundData is carried by RoundStarted, RoundWon and RoundLost.
type RoundData struct {
	RoundID string
	Profile string
	Elapsed time.Duration
	Kills   int
	Total   int
}

// HitData is carried by EnemyHit, EnemyKilled and PlayerHit.
type HitData struct {
	TargetID types.EntityID
	X, Y     float64
	Damage   int
	HP       int // target hp after the hit
}

// All lists every event type the round controller dispatches.
var All = []EventType{
	RoundStarted,
	ProjectileFired,
	EnemyHit,
	EnemyKilled,
	PlayerHit,
	RoundWon,
	RoundLost,
}
