// internal/ui/draw.go
package ui

import (
	"image"
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	whiteOnce  sync.Once
	whiteImage *ebiten.Image
)

// DefaultFace: растровый шрифт, которым рисуется весь интерфейс.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteImage
}

// fillPolygon закрашивает выпуклый многоугольник и обводит его белым.
func fillPolygon(screen *ebiten.Image, clr color.Color, pts ...[2]float32) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	for i := range pts {
		next := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, pts[i][0], pts[i][1], next[0], next[1], 1, color.White, true)
	}
}

// DrawCentered пишет строку по центру прямоугольника.
func DrawCentered(screen *ebiten.Image, face font.Face, s string, rect image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// clickPulse: масштаб «вспышки» после клика, затухает за ~0.5 с.
func clickPulse(lastClick time.Time) float32 {
	if lastClick.IsZero() {
		return 1
	}
	elapsed := time.Since(lastClick).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx := float32(x) - cx
	dy := float32(y) - cy
	return dx*dx+dy*dy <= r*r
}
