// internal/unit/board.go
package unit

import (
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/utils"
	"go-hive-defense/pkg/geom"
)

// Registry разрешает идентификаторы живых юнитов.
type Registry interface {
	// Lookup возвращает nil, если юнит не на доске.
	Lookup(id types.UnitID) Unit
}

// Board показывает юниту во время тика поиск по доске,
// добавление юнитов, общий генератор случайных чисел и шину событий.
type Board interface {
	Registry

	SquareSize() int
	NumSquares() int

	TowerAtPosition(p geom.Point) (Tower, error)
	TowerAtGridPosition(g geom.Point) (Tower, error)
	AllTowersInArea(topLeft, bottomRight geom.Point) []Tower
	FirstEnemyInArea(topLeft, bottomRight geom.Point) Enemy

	AddUnit(u Unit)
	Rand() *utils.PRNGService
	Dispatch(e event.Event)
}

// Area возвращает квадрат клеток радиуса r вокруг клетки grid.
func Area(grid geom.Point, r int) (topLeft, bottomRight geom.Point) {
	return geom.Pt(grid.X-r, grid.Y-r), geom.Pt(grid.X+r, grid.Y+r)
}
