// pkg/geom/point.go
package geom

import (
	"fmt"
	"math"

	"go-hive-defense/pkg/utils"
)

// Point хранит пиксель на доске или индекс клетки сетки.
type Point struct {
	X, Y int
}

// Pt: короткий конструктор Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add возвращает сумму двух точек
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// ToGrid переводит пиксельную точку в клетку сетки делением с округлением вниз.
func (p Point) ToGrid(squareSize int) Point {
	return Point{X: utils.FloorDiv(p.X, squareSize), Y: utils.FloorDiv(p.Y, squareSize)}
}

// Snap прижимает пиксельную точку к началу содержащей её клетки.
func (p Point) Snap(squareSize int) Point {
	return Point{
		X: p.X - utils.FloorMod(p.X, squareSize),
		Y: p.Y - utils.FloorMod(p.Y, squareSize),
	}
}

// Scale умножает обе координаты на k (клетка -> пиксель).
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// ToDouble переводит точку в дробные координаты.
func (p Point) ToDouble() DoublePoint {
	return DoublePoint{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// DoublePoint: точка с дробными координатами, позиция врага с точностью меньше клетки.
type DoublePoint struct {
	X, Y float64
}

// ToPoint округляет координаты до ближайших целых.
func (p DoublePoint) ToPoint() Point {
	return Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Offset возвращает точку, сдвинутую на вектор направления.
func (p DoublePoint) Offset(v DirectionVector) DoublePoint {
	return DoublePoint{X: p.X + v.DX, Y: p.Y + v.DY}
}
