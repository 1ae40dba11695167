// internal/enemy/mover.go
package enemy

import (
	"errors"

	"go-hive-defense/internal/board"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/unit"
	"go-hive-defense/pkg/geom"
)

// Mover: враг, который идёт по прямой к неподвижной цели.
// Направление и скорость вычисляются один раз при создании.
type Mover struct {
	unit.EnemyBase
	target    geom.Point
	direction geom.DirectionVector
}

func newMover(kind defs.Kind, x, y int, target geom.Point, squareSize int) Mover {
	base := unit.NewEnemyBase(kind, x, y, squareSize)
	speed := float64(squareSize) / defs.Def(kind).Speed
	return Mover{
		EnemyBase: base,
		target:    target,
		direction: geom.NewDirectionVector(base.Position(), target, speed),
	}
}

func (m *Mover) Target() geom.Point              { return m.target }
func (m *Mover) Direction() geom.DirectionVector { return m.direction }

// Move пробует сдвинуться на один шаг. Углы хитбокса проверяются в порядке
// TL, TR, BL, BR. Если угол упёрся в башню, шага нет и башня возвращается.
// Если угол ушёл за доску, враг уничтожается и остаётся на месте.
func (m *Mover) Move(b unit.Board) unit.Tower {
	candidate := m.Exact().Offset(m.direction)
	s := m.ScaledSize()
	topLeft := candidate.ToPoint()
	corners := [4]geom.Point{
		topLeft,
		topLeft.Add(geom.Pt(s, 0)),
		topLeft.Add(geom.Pt(0, s)),
		topLeft.Add(geom.Pt(s, s)),
	}

	for _, corner := range corners {
		blocker, err := b.TowerAtPosition(corner)
		if err != nil {
			var offscreen *board.OffscreenError
			if errors.As(err, &offscreen) {
				m.Destroy()
				return nil
			}
			// Других ошибок поиск не возвращает; считаем угол свободным
			continue
		}
		if blocker != nil {
			return blocker
		}
	}

	m.MoveTo(candidate)
	return nil
}
