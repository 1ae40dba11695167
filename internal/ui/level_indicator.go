// internal/ui/level_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-hive-defense/internal/level"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// LevelIndicator отображает номер уровня римскими цифрами.
type LevelIndicator struct {
	X, Y             int
	Color            color.Color
	LastLevelColor   color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewLevelIndicator создает индикатор, центрированный по X.
func NewLevelIndicator(x, y int) *LevelIndicator {
	return &LevelIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{70, 130, 180, 255},
		LastLevelColor:   color.RGBA{220, 40, 40, 255},
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *LevelIndicator) Draw(screen *ebiten.Image, levelNum int, face font.Face) {
	label := toRoman(levelNum)
	if label == "" {
		return
	}

	clr := i.Color
	if levelNum == level.MaxLevel {
		clr = i.LastLevelColor
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2
	y := i.Y

	// Обводка
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, y, clr)
}
