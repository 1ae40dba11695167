// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1260
	ScreenHeight = 900

	BoardSize         = 900 // Сторона игрового поля в пикселях
	ReferenceSquare   = 20  // Размер клетки, к которому привязаны размеры юнитов
	DefaultNumSquares = 45

	TicksPerSecond  = 50
	TickLength      = time.Second / TicksPerSecond
	MaxDeltaTime    = 0.06
	MaxCatchupTicks = 5

	ButtonWidth   = 180
	ButtonHeight  = 32
	ButtonSpacing = 8
	PanelPadding  = 12

	InfoPanelHeight  = 110
	ClickCooldown    = 150 // мс между переключениями кнопок
	LayerStrokeWidth = 1.0
	PauseOverlayText = "PAUSED"
	WindowTitle      = "Hive Defense"
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	PanelColor      = color.RGBA{40, 40, 52, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonHotColor  = color.RGBA{220, 60, 60, 220}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	LayerColor      = color.RGBA{0, 0, 0, 255}
	GridColor       = color.RGBA{225, 225, 225, 255}
	WinColor        = color.RGBA{60, 160, 60, 255}
	LoseColor       = color.RGBA{170, 50, 50, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}

	TerrainColor   = color.RGBA{200, 200, 100, 255}
	BlockerColor   = color.RGBA{128, 128, 128, 255}
	GeneratorColor = color.RGBA{0, 255, 0, 255}
	HealerColor    = color.RGBA{0, 0, 255, 255}
	ShooterColor   = color.RGBA{0, 255, 255, 255}
	HiveColor      = color.RGBA{255, 0, 0, 255}
	BurrowerColor  = color.RGBA{0, 0, 0, 255}
	QueenColor     = color.RGBA{255, 0, 255, 255}
)
