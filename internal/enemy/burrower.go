// internal/enemy/burrower.go
package enemy

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/unit"
	"go-hive-defense/pkg/geom"
)

// BurrowDamage: урон, который землекоп наносит преграде за тик.
const BurrowDamage = 1

// Burrower прогрызает себе путь. Сломав башню, погибает сам.
type Burrower struct {
	Mover
}

func NewBurrower(x, y int, target geom.Point, squareSize int) *Burrower {
	return &Burrower{Mover: newMover(defs.KindBurrower, x, y, target, squareSize)}
}

func (w *Burrower) Tick(b unit.Board) {
	blocker := w.Move(b)
	if blocker == nil {
		return
	}
	blocker.ChangeHealth(-BurrowDamage)
	if blocker.IsDead() {
		w.Destroy()
	}
}
