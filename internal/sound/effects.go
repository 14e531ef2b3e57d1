// internal/sound/effects.go
package sound

import (
	"time"

	"go-arena-survival/internal/event"
)

// Effect describes the blip played for one event type.
type Effect struct {
	Freq     float64
	Sweep    float64
	Duration time.Duration
	Wave     WaveType
	Volume   float64 // linear gain in [0, 1]
}

var effectTable = map[event.EventType]Effect{
	event.RoundStarted:    {Freq: 440, Sweep: 880, Duration: 250 * time.Millisecond, Wave: WaveSine, Volume: 0.3},
	event.ProjectileFired: {Freq: 880, Sweep: -1200, Duration: 50 * time.Millisecond, Wave: WaveSquare, Volume: 0.05},
	event.EnemyHit:        {Freq: 330, Duration: 40 * time.Millisecond, Wave: WavePure, Volume: 0.15},
	event.EnemyKilled:     {Freq: 220, Sweep: -400, Duration: 180 * time.Millisecond, Wave: WaveSquare, Volume: 0.15},
	event.PlayerHit:       {Freq: 150, Sweep: -200, Duration: 200 * time.Millisecond, Wave: WaveSquare, Volume: 0.25},
	event.RoundWon:        {Freq: 523, Sweep: 523, Duration: 600 * time.Millisecond, Wave: WaveSine, Volume: 0.35},
	event.RoundLost:       {Freq: 196, Sweep: -150, Duration: 800 * time.Millisecond, Wave: WaveSine, Volume: 0.35},
}

// EffectFor returns the blip for an event type.
func EffectFor(t event.EventType) (Effect, bool) {
	e, ok := effectTable[t]
	return e, ok
}
