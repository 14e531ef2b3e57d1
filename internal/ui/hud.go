// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-arena-survival/internal/app"
	"go-arena-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const hudRightMargin = 30

// HUD рисует полосу здоровья, счётчик врагов и таймер во время раунда.
type HUD struct {
	face font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

// Draw draws the in-round HUD. The health bar sits in the top right corner,
// the alive/total counter and the timer in the top left.
func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	barW, barH := float32(config.HealthBarWidth), float32(config.HealthBarHeight)
	barX := float32(config.ScreenWidth) - barW - hudRightMargin
	barY := float32(config.HUDMargin)

	fill := float32(0)
	if s.MaxHP > 0 {
		fill = barW * float32(s.HP) / float32(s.MaxHP)
	}
	vector.DrawFilledRect(screen, barX, barY, barW, barH, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, barX, barY, fill, barH, config.HealthBarFill, false)

	midY := int(barY + barH/2)
	drawMiddleLeft(screen, "+", h.face, int(barX)-14, midY, config.HealthBarFill)
	drawRightAligned(screen, fmt.Sprintf("%d/%d", s.HP, s.MaxHP), h.face, int(barX+barW), int(barY+barH)+4, config.TextLightColor)

	x := config.HUDMargin
	x += drawMiddleLeft(screen, fmt.Sprintf("%d/%d", s.Alive, s.Total), h.face, x, midY, config.TextLightColor)
	drawMiddleLeft(screen, app.FormatElapsed(s.Elapsed), h.face, x+20, midY, config.TextLightColor)
}
