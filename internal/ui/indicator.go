// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SelectionIndicator: кружок цвета выбранной для покупки башни.
type SelectionIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewSelectionIndicator(x, y, radius float32) *SelectionIndicator {
	return &SelectionIndicator{X: x, Y: y, Radius: radius}
}

// Draw рисует кружок; пустой контур, если ничего не выбрано.
func (i *SelectionIndicator) Draw(screen *ebiten.Image, clr color.Color, selected bool) {
	r := i.Radius * clickPulse(i.LastClickTime)
	if selected {
		vector.DrawFilledCircle(screen, i.X, i.Y, r, clr, true)
	}
	vector.StrokeCircle(screen, i.X, i.Y, r, 1.5, color.White, true)
}

// Pulse запускает анимацию после смены выбора.
func (i *SelectionIndicator) Pulse() {
	i.LastClickTime = time.Now()
}
