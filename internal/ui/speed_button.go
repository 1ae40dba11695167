// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton: два треугольника «перемотки», цвет зависит от множителя скорости.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * clickPulse(b.LastClickTime)
	clr := b.StateColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		fillPolygon(screen, clr,
			[2]float32{b.X - width + dx, b.Y - height/2},
			[2]float32{b.X + dx, b.Y},
			[2]float32{b.X - width + dx, b.Y + height/2},
		)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Форма сложная, поэтому попадание считаем по кругу.
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}

// SetState выставляет индекс скорости без анимации.
func (b *SpeedButton) SetState(i int) {
	if i >= 0 && i < len(b.StateColors) {
		b.CurrentState = i
	}
}
