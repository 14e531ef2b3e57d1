// internal/state/input.go
package state

import (
	"go-arena-survival/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

// sampleInput reads the keyboard and mouse once for the current tick.
func sampleInput() component.Input {
	x, y := ebiten.CursorPosition()
	return component.Input{
		Left:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:       ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:     ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		PointerX: float64(x),
		PointerY: float64(y),
		Firing:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
