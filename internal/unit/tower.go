// internal/unit/tower.go
package unit

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/types"
	"go-hive-defense/pkg/geom"
)

// Tower: неподвижный юнит, занимающий ровно одну клетку сетки.
type Tower interface {
	Unit
	isTower()
}

// Powered: башня, которой для действий нужен источник энергии.
type Powered interface {
	Tower
	IsPowered() bool
	PoweredBy() types.UnitID
	// Power запитывает башню от source, только если она ещё не запитана.
	Power(source types.UnitID) bool
	UnPower()
}

// PowerSource: башня, которая раздаёт энергию и помнит, кого запитала.
type PowerSource interface {
	Tower
	Powering() []types.UnitID
	// Release снимает питание со всех, кого запитал источник.
	Release(reg Registry)
}

// TowerBase хранит позицию, прижатую к сетке в момент создания.
type TowerBase struct {
	Base
	position     geom.Point
	gridPosition geom.Point
}

// NewTowerBase прижимает пиксельную позицию (x, y) к началу клетки.
func NewTowerBase(kind defs.Kind, x, y, squareSize int) TowerBase {
	snapped := geom.Pt(x, y).Snap(squareSize)
	return TowerBase{
		Base:         NewBase(kind, squareSize),
		position:     snapped,
		gridPosition: snapped.ToGrid(squareSize),
	}
}

func (t *TowerBase) Position() geom.Point     { return t.position }
func (t *TowerBase) GridPosition() geom.Point { return t.gridPosition }
func (t *TowerBase) Center() geom.Point       { return center(t.position, t.ScaledSize()) }

func (t *TowerBase) isTower() {}
