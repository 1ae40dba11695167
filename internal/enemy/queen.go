// internal/enemy/queen.go
package enemy

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/unit"
	"go-hive-defense/pkg/geom"
)

// Queen летит к цели и через HiveDelay тиков превращается в улей.
// Сквозь башни не проходит, но и не атакует их.
type Queen struct {
	Mover
	hiveDelay int
	lifetime  int
}

func NewQueen(x, y int, target geom.Point, squareSize int) *Queen {
	return &Queen{
		Mover:     newMover(defs.KindQueen, x, y, target, squareSize),
		hiveDelay: defs.Def(defs.KindQueen).Delay,
	}
}

func (q *Queen) Lifetime() int  { return q.lifetime }
func (q *Queen) HiveDelay() int { return q.hiveDelay }

func (q *Queen) Tick(b unit.Board) {
	q.Move(b)
	q.lifetime++
	if q.lifetime < q.hiveDelay {
		return
	}

	p := q.Position()
	hive := NewHive(p.X, p.Y, q.SquareSize(), b.Rand())
	b.AddUnit(hive)
	b.Dispatch(event.Event{
		Type: event.HiveFounded,
		Data: event.UnitData{ID: hive.ID(), Kind: hive.Kind().String()},
	})
	q.Destroy()
}
