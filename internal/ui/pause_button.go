// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует «паузу» (две полосы) или «play» (треугольник).
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	size := b.Size * clickPulse(b.LastClickTime)

	if b.IsPaused {
		// Треугольник (play)
		fillPolygon(screen, b.PlayColor,
			[2]float32{b.X - size, b.Y - size*1.2},
			[2]float32{b.X + size, b.Y},
			[2]float32{b.X - size, b.Y + size*1.2},
		)
		return
	}

	// Две полосы (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	top := b.Y - height/2
	for _, left := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, left, top, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, left, top, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.2)
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

// SetPaused синхронизирует иконку с состоянием игры без анимации.
func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
