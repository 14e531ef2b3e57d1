// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// drawCentered draws s with its bounding box centred on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - b.Dx()/2
	y := cy - b.Dy()/2 - b.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// drawRightAligned draws s so that its right edge is at x and its top at y.
func drawRightAligned(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Dx(), y-b.Min.Y, clr)
}

// drawMiddleLeft draws s starting at x, vertically centred on cy, and returns
// the drawn width.
func drawMiddleLeft(screen *ebiten.Image, s string, face font.Face, x, cy int, clr color.Color) int {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x, cy-b.Dy()/2-b.Min.Y, clr)
	return b.Dx()
}
