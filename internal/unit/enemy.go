// internal/unit/enemy.go
package unit

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/pkg/geom"
)

// Enemy: юнит под управлением ИИ со свободной (дробной) позицией.
type Enemy interface {
	Unit
	Exact() geom.DoublePoint
	isEnemy()
}

// EnemyBase хранит дробную позицию врага.
type EnemyBase struct {
	Base
	position geom.DoublePoint
}

func NewEnemyBase(kind defs.Kind, x, y, squareSize int) EnemyBase {
	return EnemyBase{
		Base:     NewBase(kind, squareSize),
		position: geom.Pt(x, y).ToDouble(),
	}
}

// Position округляет дробную позицию до ближайшего пикселя.
func (e *EnemyBase) Position() geom.Point {
	return e.position.ToPoint()
}

func (e *EnemyBase) GridPosition() geom.Point {
	return e.Position().ToGrid(e.squareSize)
}

func (e *EnemyBase) Center() geom.Point { return center(e.Position(), e.ScaledSize()) }

// Exact возвращает позицию без округления.
func (e *EnemyBase) Exact() geom.DoublePoint { return e.position }

// MoveTo фиксирует новую позицию.
func (e *EnemyBase) MoveTo(p geom.DoublePoint) { e.position = p }

func (e *EnemyBase) isEnemy() {}
