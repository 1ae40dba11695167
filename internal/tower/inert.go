// internal/tower/inert.go
package tower

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/unit"
)

// Terrain: заполнитель уровня. Его ломают, но не лечат.
type Terrain struct {
	unit.TowerBase
}

func NewTerrain(x, y, squareSize int) *Terrain {
	return &Terrain{TowerBase: unit.NewTowerBase(defs.KindTerrain, x, y, squareSize)}
}

func (t *Terrain) Tick(unit.Board) {}

// Blocker: покупаемая стена с большим запасом здоровья.
type Blocker struct {
	unit.TowerBase
}

func NewBlocker(x, y, squareSize int) *Blocker {
	return &Blocker{TowerBase: unit.NewTowerBase(defs.KindBlocker, x, y, squareSize)}
}

func (b *Blocker) Tick(unit.Board) {}
