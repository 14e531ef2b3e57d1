// internal/component/game_state.go
package component

// Phase — фаза раунда.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	}
	return "unknown"
}

// Terminal reports whether only an explicit reset can leave this phase.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}
