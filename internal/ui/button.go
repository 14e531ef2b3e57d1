// internal/ui/button.go
package ui

import (
	"image/color"

	"go-arena-survival/internal/config"
	"go-arena-survival/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       geom.Rect
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
}

// NewButton создает новую кнопку.
func NewButton(rect geom.Rect, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
	}
}

// NewRestartButton places the restart button centred horizontally below the
// end-of-round summary.
func NewRestartButton() *Button {
	w, h := float64(config.RestartButtonWidth), float64(config.RestartButtonHeight)
	rect := geom.Rect{
		X: float64(config.ScreenWidth)/2 - w/2,
		Y: float64(config.ScreenHeight)/2 + config.RestartButtonOffsetY,
		W: w,
		H: h,
	}
	return NewButton(rect, "Restart")
}

// IsHovered проверяет, находится ли курсор над кнопкой.
func (b *Button) IsHovered(x, y int) bool {
	return b.Rect.Contains(float64(x), float64(y))
}

// Draw рисует кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), bg, true)
	cx, cy := b.Rect.Center()
	drawCentered(screen, b.Text, face, int(cx), int(cy), b.TextColor)
}
