// internal/board/search.go
package board

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/unit"
	"go-hive-defense/pkg/geom"
)

// Search: read-only queries over a State. Towers use it to find targets and
// power candidates; movers use it for hitbox collision.
type Search struct {
	state *State
}

func NewSearch(state *State) *Search {
	return &Search{state: state}
}

// TowerAtPosition converts a pixel position to its grid cell and returns the tower there.
func (s *Search) TowerAtPosition(p geom.Point) (unit.Tower, error) {
	return s.TowerAtGridPosition(s.AbsoluteToGridPosition(p))
}

// TowerAtGridPosition returns the tower in a cell, nil for an empty cell,
// or an *OffscreenError when the cell is not on the board.
func (s *Search) TowerAtGridPosition(g geom.Point) (unit.Tower, error) {
	if !s.state.InBounds(g) {
		return nil, newOffscreenError(g, s.state.numSquares)
	}
	return s.state.towers[g.X][g.Y], nil
}

// AllTowersInArea scans the inclusive rectangle x-major; off-board cells are skipped.
func (s *Search) AllTowersInArea(topLeft, bottomRight geom.Point) []unit.Tower {
	var found []unit.Tower
	for x := topLeft.X; x <= bottomRight.X; x++ {
		for y := topLeft.Y; y <= bottomRight.Y; y++ {
			tower, err := s.TowerAtGridPosition(geom.Pt(x, y))
			if err != nil || tower == nil {
				continue
			}
			found = append(found, tower)
		}
	}
	return found
}

// FirstEnemyInArea returns the first non-Hive enemy, in list order, whose grid
// cell lies in the rectangle. Which one wins among several is not a contract.
func (s *Search) FirstEnemyInArea(topLeft, bottomRight geom.Point) unit.Enemy {
	for _, e := range s.state.enemies {
		if targetable(e) && inArea(e.GridPosition(), topLeft, bottomRight) {
			return e
		}
	}
	return nil
}

// AllEnemiesInArea is FirstEnemyInArea without the early return.
func (s *Search) AllEnemiesInArea(topLeft, bottomRight geom.Point) []unit.Enemy {
	var found []unit.Enemy
	for _, e := range s.state.enemies {
		if targetable(e) && inArea(e.GridPosition(), topLeft, bottomRight) {
			found = append(found, e)
		}
	}
	return found
}

// AllEnemies returns the live enemy list, Hives included.
func (s *Search) AllEnemies() []unit.Enemy {
	return s.state.enemies
}

func (s *Search) AbsoluteToGridPosition(p geom.Point) geom.Point {
	return p.ToGrid(s.state.squareSize)
}

// Hives are never valid targets.
func targetable(e unit.Enemy) bool {
	return e.Kind() != defs.KindHive
}

func inArea(g, topLeft, bottomRight geom.Point) bool {
	return g.X >= topLeft.X && g.X <= bottomRight.X && g.Y >= topLeft.Y && g.Y <= bottomRight.Y
}
