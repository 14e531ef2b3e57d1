// internal/state/session.go
package state

import (
	"go-arena-survival/internal/app"
	"go-arena-survival/internal/clock"
	"go-arena-survival/internal/sound"
)

// Session — то, что живёт дольше любого экрана: контроллер раунда, игровые
// часы и звук.
type Session struct {
	Game  *app.Game
	Clock *clock.Pausable
	Sound *sound.Player // may be nil
}
