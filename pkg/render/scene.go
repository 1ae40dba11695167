// pkg/render/scene.go
package render

import (
	"image/color"

	"go-hive-defense/internal/board"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"
	"go-hive-defense/pkg/geom"
)

// Rect: залитый квадрат юнита.
type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Segment описывает линию слоя (провод питания, луч лекаря или выстрел).
type Segment struct {
	X1, Y1, X2, Y2 float32
	Color          color.RGBA
}

// Scene: всё, что нужно нарисовать за кадр.
type Scene struct {
	Rects []Rect
	Lines []Segment
}

// Сущности, которые рисуют связи с другими юнитами.
type (
	powerSource interface{ Powering() []types.UnitID }
	targeting   interface{ LastTarget() types.UnitID }
	powered     interface{ IsPowered() bool }
)

// BuildScene собирает кадр в два прохода: сначала юниты (враги, потом
// башни), затем слой поверх них.
func BuildScene(b *board.Board, colors *BoardColors) Scene {
	var scene Scene
	enemies := b.Enemies()
	towers := b.State().Towers()

	for _, e := range enemies {
		scene.Rects = append(scene.Rects, unitRect(e, colors.KindColor(e.Kind())))
	}
	for _, t := range towers {
		clr := colors.KindColor(t.Kind())
		if p, ok := t.(powered); ok && !p.IsPowered() {
			clr = DarkenColor(clr)
		}
		scene.Rects = append(scene.Rects, unitRect(t, clr))
	}

	for _, t := range towers {
		if p, ok := t.(powered); ok && !p.IsPowered() {
			// Незапитанная башня перечёркнута по диагонали
			pos, s := t.Position(), t.ScaledSize()
			scene.Lines = append(scene.Lines, segment(pos, pos.Add(geom.Pt(s, s)), colors.Layer))
		}
		if src, ok := t.(powerSource); ok {
			for _, id := range src.Powering() {
				if consumer := b.Lookup(id); consumer != nil {
					scene.Lines = append(scene.Lines, segment(t.Center(), consumer.Center(), colors.Layer))
				}
			}
		}
		if tg, ok := t.(targeting); ok && tg.LastTarget() != types.NoUnit {
			if target := b.Lookup(tg.LastTarget()); target != nil {
				scene.Lines = append(scene.Lines, segment(t.Center(), target.Center(), colors.KindColor(t.Kind())))
			}
		}
	}
	return scene
}

func unitRect(u unit.Unit, clr color.RGBA) Rect {
	pos, s := u.Position(), float32(u.ScaledSize())
	return Rect{X: float32(pos.X), Y: float32(pos.Y), W: s, H: s, Color: clr}
}

func segment(from, to geom.Point, clr color.RGBA) Segment {
	return Segment{X1: float32(from.X), Y1: float32(from.Y), X2: float32(to.X), Y2: float32(to.Y), Color: clr}
}
