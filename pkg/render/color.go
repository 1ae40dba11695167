// pkg/render/color.go
package render

import (
	"image/color"

	"go-hive-defense/internal/config"
	"go-hive-defense/internal/defs"
)

// BoardColors holds all the colors needed to draw a board.
type BoardColors struct {
	Background  color.RGBA
	Grid        color.RGBA
	Layer       color.RGBA
	Kinds       map[defs.Kind]color.RGBA
	StrokeWidth float32
}

// DefaultBoardColors собирает палитру из config.
func DefaultBoardColors() *BoardColors {
	return &BoardColors{
		Background: config.BackgroundColor,
		Grid:       config.GridColor,
		Layer:      config.LayerColor,
		Kinds: map[defs.Kind]color.RGBA{
			defs.KindTerrain:   config.TerrainColor,
			defs.KindBlocker:   config.BlockerColor,
			defs.KindGenerator: config.GeneratorColor,
			defs.KindHealer:    config.HealerColor,
			defs.KindShooter:   config.ShooterColor,
			defs.KindHive:      config.HiveColor,
			defs.KindBurrower:  config.BurrowerColor,
			defs.KindQueen:     config.QueenColor,
		},
		StrokeWidth: float32(config.LayerStrokeWidth),
	}
}

// KindColor returns the fill color of a unit kind; unknown kinds are drawn with the layer color.
func (c *BoardColors) KindColor(kind defs.Kind) color.RGBA {
	if clr, ok := c.Kinds[kind]; ok {
		return clr
	}
	return c.Layer
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
