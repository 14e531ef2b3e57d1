// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth     = 800
	ScreenHeight    = 600
	BorderThickness = 32.0

	PlayerSize     = 32.0
	EnemySize      = 28.0
	ProjectileSize = 6.0
	ParticleSize   = 4.0
	TreeVariants   = 4

	// Частицы: скорость по каждой оси в [-ParticleSpread/2, ParticleSpread/2),
	// жизнь в [ParticleLifeMin, ParticleLifeMin+ParticleLifeSpread) тиков.
	ParticleSpread     = 4.0
	ParticleLifeMin    = 30.0
	ParticleLifeSpread = 20.0
	ParticleBaseCount  = 5
	ParticleMaxCount   = 20

	HealthBarWidth  = 100
	HealthBarHeight = 15
	HUDMargin       = 10

	RestartButtonWidth   = 120
	RestartButtonHeight  = 40
	RestartButtonOffsetY = 70
)

var (
	BackgroundColor = color.RGBA{34, 70, 34, 255}
	FenceColor      = color.RGBA{160, 82, 45, 255}  // sienna
	FlowerColor     = color.RGBA{255, 0, 255, 255}  // magenta
	LakeColor       = color.RGBA{0, 191, 255, 255}  // deepskyblue
	PlayerColor     = color.RGBA{65, 105, 225, 255} // royalblue
	ProjectileColor = color.RGBA{255, 255, 0, 255}
	ParticleColor   = color.RGBA{200, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthBarBack   = color.RGBA{85, 85, 85, 255}
	HealthBarFill   = color.RGBA{220, 20, 20, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	ButtonColor     = color.RGBA{169, 169, 169, 255}
	ButtonHover     = color.RGBA{128, 128, 128, 255}
	TreeColors      = []color.RGBA{
		{0, 100, 0, 255},
		{20, 110, 30, 255},
		{34, 90, 20, 255},
		{10, 80, 40, 255},
	}
)
