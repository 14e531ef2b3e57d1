// pkg/render/arena_renderer.go
package render

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const enemyBarHeight = 3

// ArenaRenderer рисует мир раунда. Препятствия не меняются в течение раунда,
// поэтому они рисуются один раз в предрендеренный задник.
type ArenaRenderer struct {
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image
	mapRound     string // round the background was baked for
}

func NewArenaRenderer(screenWidth, screenHeight int) *ArenaRenderer {
	return &ArenaRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
}

// RenderMapImage bakes the background and every obstacle into the map image.
func (r *ArenaRenderer) RenderMapImage(ds []component.Drawable, roundID string) {
	r.mapImage.Fill(config.BackgroundColor)
	for i := range ds {
		if ds[i].Kind == component.KindObstacle {
			drawObstacle(r.mapImage, &ds[i])
		}
	}
	r.mapRound = roundID
}

// Draw paints the drawables in order. The background is rebaked whenever a
// new round starts.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, ds []component.Drawable, roundID string) {
	if roundID != r.mapRound {
		r.RenderMapImage(ds, roundID)
	}
	screen.DrawImage(r.mapImage, nil)

	for i := range ds {
		d := &ds[i]
		x, y, w, h := float32(d.Rect.X), float32(d.Rect.Y), float32(d.Rect.W), float32(d.Rect.H)
		switch d.Kind {
		case component.KindPlayer:
			vector.DrawFilledRect(screen, x, y, w, h, config.PlayerColor, false)
		case component.KindEnemy:
			vector.DrawFilledRect(screen, x, y, w, h, EnemyColor(d.Shade), false)
			vector.DrawFilledRect(screen, x, y-enemyBarHeight-2, w*float32(d.Health), enemyBarHeight, config.HealthBarFill, false)
		case component.KindProjectile:
			vector.DrawFilledRect(screen, x, y, w, h, config.ProjectileColor, false)
		case component.KindParticle:
			vector.DrawFilledRect(screen, x, y, w, h, FadeColor(config.ParticleColor, d.Alpha), false)
		}
	}
}

func drawObstacle(dst *ebiten.Image, d *component.Drawable) {
	x, y, w, h := float32(d.Rect.X), float32(d.Rect.Y), float32(d.Rect.W), float32(d.Rect.H)
	c := ObstacleColor(d.Obstacle, d.Variant)

	switch d.Obstacle {
	case component.ObstacleTree:
		// trunk and crown
		vector.DrawFilledRect(dst, x+w*0.4, y+h*0.55, w*0.2, h*0.45, DarkenColor(config.FenceColor), true)
		vector.DrawFilledCircle(dst, x+w/2, y+h*0.4, min(w, h)*0.4, c, true)
		vector.StrokeCircle(dst, x+w/2, y+h*0.4, min(w, h)*0.4, 1, DarkenColor(c), true)
	case component.ObstacleFlower:
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, min(w, h)/2, c, true)
	default:
		vector.DrawFilledRect(dst, x, y, w, h, c, false)
		vector.StrokeRect(dst, x, y, w, h, 1, DarkenColor(c), false)
	}
}
