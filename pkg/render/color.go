// pkg/render/color.go
package render

import (
	"image/color"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
)

// ObstacleColor returns the fill colour of an obstacle.
func ObstacleColor(t component.ObstacleType, variant int) color.RGBA {
	switch t {
	case component.ObstacleTree:
		if variant < 0 || variant >= len(config.TreeColors) {
			variant = 0
		}
		return config.TreeColors[variant]
	case component.ObstacleFence:
		return config.FenceColor
	case component.ObstacleFlower:
		return config.FlowerColor
	case component.ObstacleLake:
		return config.LakeColor
	}
	return color.RGBA{128, 128, 128, 255}
}

// EnemyColor returns the grey of an enemy drawn with the given shade.
func EnemyColor(shade uint8) color.RGBA {
	return color.RGBA{shade, shade, shade, 255}
}

// FadeColor scales c's alpha by alpha in [0, 1]. The result is premultiplied,
// as ebiten expects.
func FadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
