// internal/tui/glyph.go
package tui

import (
	"image/color"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"

	"github.com/gdamore/tcell/v2"
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	backgroundStyle = tcell.StyleDefault.Background(rgb(config.BackgroundColor))
	hudStyle        = tcell.StyleDefault.Foreground(rgb(config.TextLightColor))
	hpStyle         = tcell.StyleDefault.Foreground(rgb(config.HealthBarFill)).Bold(true)
	overlayStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	buttonStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(rgb(config.ButtonColor)).Bold(true)
)

// Glyph returns the character and style a drawable is shown with.
func Glyph(d component.Drawable) (rune, tcell.Style) {
	switch d.Kind {
	case component.KindObstacle:
		return obstacleGlyph(d.Obstacle, d.Variant)
	case component.KindPlayer:
		return '@', backgroundStyle.Foreground(rgb(config.PlayerColor)).Bold(true)
	case component.KindEnemy:
		shade := int32(d.Shade)
		return 'S', backgroundStyle.Foreground(tcell.NewRGBColor(shade, shade, shade)).Bold(true)
	case component.KindProjectile:
		return '•', backgroundStyle.Foreground(rgb(config.ProjectileColor))
	case component.KindParticle:
		c := config.ParticleColor
		a := d.Alpha
		fg := tcell.NewRGBColor(int32(float64(c.R)*a), int32(float64(c.G)*a), int32(float64(c.B)*a))
		return '·', backgroundStyle.Foreground(fg)
	}
	return '?', backgroundStyle
}

func obstacleGlyph(t component.ObstacleType, variant int) (rune, tcell.Style) {
	switch t {
	case component.ObstacleTree:
		tc := config.TreeColors[0]
		if variant >= 0 && variant < len(config.TreeColors) {
			tc = config.TreeColors[variant]
		}
		return '♣', backgroundStyle.Foreground(rgb(tc)).Bold(true)
	case component.ObstacleFence:
		return '#', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(rgb(config.FenceColor))
	case component.ObstacleFlower:
		return '*', backgroundStyle.Foreground(rgb(config.FlowerColor))
	case component.ObstacleLake:
		return '~', tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(rgb(config.LakeColor))
	}
	return '?', backgroundStyle
}
