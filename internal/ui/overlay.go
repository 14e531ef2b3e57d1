// internal/ui/overlay.go
package ui

import (
	"fmt"

	"go-arena-survival/internal/app"
	"go-arena-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// EndOverlay — итоговый экран раунда с кнопкой перезапуска.
type EndOverlay struct {
	face    font.Face
	Restart *Button
}

func NewEndOverlay(face font.Face) *EndOverlay {
	return &EndOverlay{face: face, Restart: NewRestartButton()}
}

// Draw dims the arena and shows the round summary.
func (o *EndOverlay) Draw(screen *ebiten.Image, s app.Snapshot, hovered bool) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	drawCentered(screen, app.Headline(s.Phase), o.face, cx, cy-50, config.TextLightColor)
	drawCentered(screen, "Time: "+app.FormatElapsed(s.Elapsed), o.face, cx, cy-10, config.TextLightColor)
	drawCentered(screen, fmt.Sprintf("Kills: %d", s.Kills), o.face, cx, cy+30, config.TextLightColor)

	o.Restart.Draw(screen, o.face, hovered)
}

// DrawPaused dims the arena and shows the pause banner.
func DrawPaused(screen *ebiten.Image, face font.Face) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	drawCentered(screen, "PAUSED", face, config.ScreenWidth/2, config.ScreenHeight/2-20, config.TextLightColor)
	drawCentered(screen, "P / Esc to resume", face, config.ScreenWidth/2, config.ScreenHeight/2+10, config.TextLightColor)
}
