// pkg/render/board_renderer.go
package render

import (
	"go-hive-defense/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardRenderer рисует доску в левом верхнем углу экрана.
type BoardRenderer struct {
	colors     *BoardColors
	numSquares int
	squareSize int
	gridImage  *ebiten.Image // Предрендеренная сетка
}

func NewBoardRenderer(numSquares, squareSize int, colors *BoardColors) *BoardRenderer {
	if colors == nil {
		colors = DefaultBoardColors()
	}
	extent := numSquares * squareSize
	r := &BoardRenderer{
		colors:     colors,
		numSquares: numSquares,
		squareSize: squareSize,
		gridImage:  ebiten.NewImage(extent, extent),
	}
	r.RenderGridImage()
	return r
}

// RenderGridImage рисует фон и линии сетки один раз.
func (r *BoardRenderer) RenderGridImage() {
	r.gridImage.Fill(r.colors.Background)
	extent := float32(r.numSquares * r.squareSize)
	for i := 1; i < r.numSquares; i++ {
		p := float32(i * r.squareSize)
		vector.StrokeLine(r.gridImage, p, 0, p, extent, 1, r.colors.Grid, false)
		vector.StrokeLine(r.gridImage, 0, p, extent, p, 1, r.colors.Grid, false)
	}
}

func (r *BoardRenderer) Draw(screen *ebiten.Image, b *board.Board) {
	screen.DrawImage(r.gridImage, nil)

	scene := BuildScene(b, r.colors)
	for _, rect := range scene.Rects {
		vector.DrawFilledRect(screen, rect.X, rect.Y, rect.W, rect.H, rect.Color, false)
	}
	for _, line := range scene.Lines {
		vector.StrokeLine(screen, line.X1, line.Y1, line.X2, line.Y2, r.colors.StrokeWidth, line.Color, true)
	}
}
