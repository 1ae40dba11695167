// internal/board/state.go
package board

import (
	"fmt"

	"go-hive-defense/internal/config"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"
	"go-hive-defense/pkg/geom"
)

// State хранит сетку башен и список врагов.
// Создаётся один раз на уровень и никогда не меняет размер.
type State struct {
	towers      [][]unit.Tower // [x][y], nil: пустая клетка
	enemies     []unit.Enemy
	squareSize  int
	numSquares  int
	initialTime int

	units  map[types.UnitID]unit.Unit
	nextID types.UnitID
}

// NewState создаёт пустую доску numSquares x numSquares на поле config.BoardSize.
func NewState(numSquares, initialTime int) (*State, error) {
	if numSquares <= 0 || numSquares > config.BoardSize {
		return nil, fmt.Errorf("invalid board size %d: must be in [1, %d]", numSquares, config.BoardSize)
	}
	return NewStateSized(numSquares, config.BoardSize/numSquares, initialTime)
}

// NewStateSized создаёт доску с явно заданным размером клетки.
func NewStateSized(numSquares, squareSize, initialTime int) (*State, error) {
	if numSquares <= 0 {
		return nil, fmt.Errorf("invalid board size %d", numSquares)
	}
	if squareSize <= 0 {
		return nil, fmt.Errorf("invalid square size %d", squareSize)
	}
	if initialTime < 0 {
		return nil, fmt.Errorf("invalid level time %d", initialTime)
	}

	towers := make([][]unit.Tower, numSquares)
	for x := range towers {
		towers[x] = make([]unit.Tower, numSquares)
	}
	return &State{
		towers:      towers,
		squareSize:  squareSize,
		numSquares:  numSquares,
		initialTime: initialTime,
		units:       make(map[types.UnitID]unit.Unit),
		nextID:      1,
	}, nil
}

func (s *State) SquareSize() int  { return s.squareSize }
func (s *State) NumSquares() int  { return s.numSquares }
func (s *State) InitialTime() int { return s.initialTime }

// InBounds проверяет, что клетка лежит на доске.
func (s *State) InBounds(g geom.Point) bool {
	return g.X >= 0 && g.X < s.numSquares && g.Y >= 0 && g.Y < s.numSquares
}

// TowerAt возвращает башню в клетке или nil (в том числе за пределами доски).
func (s *State) TowerAt(g geom.Point) unit.Tower {
	if !s.InBounds(g) {
		return nil
	}
	return s.towers[g.X][g.Y]
}

// Towers возвращает все башни по столбцам: x снаружи, y внутри.
func (s *State) Towers() []unit.Tower {
	var out []unit.Tower
	for x := range s.towers {
		for _, t := range s.towers[x] {
			if t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// Enemies возвращает живой список врагов. Не изменять.
func (s *State) Enemies() []unit.Enemy {
	return s.enemies
}

// SetTower кладёт башню в её клетку без проверки врагов, перезаписывая
// прежнего обитателя. Используется загрузчиком уровня и AddUnit.
func (s *State) SetTower(t unit.Tower) error {
	g := t.GridPosition()
	if !s.InBounds(g) {
		return newOffscreenError(g, s.numSquares)
	}
	if old := s.towers[g.X][g.Y]; old != nil && old != t {
		s.evict(old)
	}
	s.register(t)
	s.towers[g.X][g.Y] = t
	return nil
}

// ClearCell опустошает клетку.
func (s *State) ClearCell(g geom.Point) error {
	if !s.InBounds(g) {
		return newOffscreenError(g, s.numSquares)
	}
	if old := s.towers[g.X][g.Y]; old != nil {
		s.evict(old)
		s.towers[g.X][g.Y] = nil
	}
	return nil
}

// AppendEnemy добавляет врага в конец списка.
func (s *State) AppendEnemy(e unit.Enemy) {
	s.register(e)
	s.enemies = append(s.enemies, e)
}

// CountTowers считает башни заданного вида.
func (s *State) CountTowers(kind defs.Kind) int {
	count := 0
	for x := range s.towers {
		for _, t := range s.towers[x] {
			if t != nil && t.Kind() == kind {
				count++
			}
		}
	}
	return count
}

// Lookup разрешает идентификатор живого юнита.
func (s *State) Lookup(id types.UnitID) unit.Unit {
	return s.units[id]
}

// Len возвращает число зарегистрированных юнитов.
func (s *State) Len() int {
	return len(s.units)
}

func (s *State) register(u unit.Unit) {
	if u.ID() == types.NoUnit {
		u.AssignID(s.nextID)
		s.nextID++
	}
	s.units[u.ID()] = u
}

func (s *State) unregister(u unit.Unit) {
	delete(s.units, u.ID())
}

// evict убирает вытесненную башню; источник энергии отпускает подопечных.
func (s *State) evict(old unit.Tower) {
	if src, ok := old.(unit.PowerSource); ok {
		src.Release(s)
	}
	s.unregister(old)
}
