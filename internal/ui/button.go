// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-hive-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect        image.Rectangle
	Text        string
	TextColor   color.Color
	BgColor     color.Color
	HoverColor  color.Color
	ActiveColor color.Color
	Face        font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:        rect,
		Text:        label,
		TextColor:   config.TextLightColor,
		BgColor:     config.ButtonColor,
		HoverColor:  color.RGBA{100, 160, 210, 230},
		ActiveColor: config.ButtonHotColor,
		Face:        face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку. active подсвечивает выбранную кнопку.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int, active bool) {
	bg := b.BgColor
	switch {
	case active:
		bg = b.ActiveColor
	case b.Contains(cursorX, cursorY):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{30, 30, 30, 255}, true)

	DrawCentered(screen, b.Face, b.Text, b.Rect, b.TextColor)
}
