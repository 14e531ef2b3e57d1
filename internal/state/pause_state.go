// internal/state/pause_state.go
package state

import (
	"go-arena-survival/internal/clock"
	"go-arena-survival/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игровые часы и рисует поверх предыдущего состояния.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	clock         *clock.Pausable
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, c *clock.Pausable) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		clock:         c,
		face:          basicfont.Face7x13,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.clock.Resume()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	ui.DrawPaused(screen, s.face)
}

func (s *PauseState) Exit() {}
