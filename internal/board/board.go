// internal/board/board.go
package board

import (
	"fmt"

	"go-hive-defense/internal/event"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"
	"go-hive-defense/internal/utils"
	"go-hive-defense/pkg/geom"
)

// Board владеет состоянием уровня и продвигает его по тикам.
// Все юниты видят доску через интерфейс unit.Board.
type Board struct {
	state  *State
	search *Search
	rng    *utils.PRNGService
	events *event.Dispatcher

	sweeping bool
	pending  []unit.Enemy // враги, рождённые во время прохода по врагам
	ticks    uint64
}

// New оборачивает состояние. rng и events могут быть nil.
func New(state *State, rng *utils.PRNGService, events *event.Dispatcher) *Board {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &Board{
		state:  state,
		search: NewSearch(state),
		rng:    rng,
		events: events,
	}
}

func (b *Board) State() *State         { return b.state }
func (b *Board) Search() *Search       { return b.search }
func (b *Board) TickCount() uint64     { return b.ticks }
func (b *Board) SquareSize() int       { return b.state.squareSize }
func (b *Board) NumSquares() int       { return b.state.numSquares }
func (b *Board) InitialTime() int      { return b.state.initialTime }
func (b *Board) Enemies() []unit.Enemy { return b.state.enemies }

func (b *Board) Rand() *utils.PRNGService { return b.rng }

func (b *Board) Dispatch(e event.Event) {
	b.events.Dispatch(e)
}

func (b *Board) Lookup(id types.UnitID) unit.Unit {
	return b.state.Lookup(id)
}

func (b *Board) TowerAtPosition(p geom.Point) (unit.Tower, error) {
	return b.search.TowerAtPosition(p)
}

func (b *Board) TowerAtGridPosition(g geom.Point) (unit.Tower, error) {
	return b.search.TowerAtGridPosition(g)
}

func (b *Board) AllTowersInArea(topLeft, bottomRight geom.Point) []unit.Tower {
	return b.search.AllTowersInArea(topLeft, bottomRight)
}

func (b *Board) FirstEnemyInArea(topLeft, bottomRight geom.Point) unit.Enemy {
	return b.search.FirstEnemyInArea(topLeft, bottomRight)
}

// AddUnit размещает юнит на доске.
// Башня занимает свою клетку, если там нет ни одного врага, иначе
// молча отклоняется. Враг дописывается в конец списка; если список
// сейчас обходится, враг попадает в буфер и начнёт действовать со
// следующего тика.
func (b *Board) AddUnit(u unit.Unit) {
	switch u := u.(type) {
	case unit.Tower:
		b.addTower(u)
	case unit.Enemy:
		b.addEnemy(u)
	default:
		panic(fmt.Sprintf("board: unit %T is neither a tower nor an enemy", u))
	}
}

func (b *Board) addTower(t unit.Tower) {
	g := t.GridPosition()
	if !b.state.InBounds(g) || b.enemyInCell(g) {
		b.Dispatch(event.Event{Type: event.PlacementRejected, Data: unitData(t)})
		return
	}
	if err := b.state.SetTower(t); err != nil {
		panic(fmt.Sprintf("board: placing %s: %v", t.Kind(), err))
	}
	b.Dispatch(event.Event{Type: event.UnitAdded, Data: unitData(t)})
}

func (b *Board) addEnemy(e unit.Enemy) {
	if b.sweeping {
		b.state.register(e)
		b.pending = append(b.pending, e)
	} else {
		b.state.AppendEnemy(e)
	}
	b.Dispatch(event.Event{Type: event.UnitAdded, Data: unitData(e)})
}

func (b *Board) enemyInCell(g geom.Point) bool {
	for _, e := range b.state.enemies {
		if e.GridPosition() == g {
			return true
		}
	}
	for _, e := range b.pending {
		if e.GridPosition() == g {
			return true
		}
	}
	return false
}

// Tick продвигает доску на один шаг: сначала все враги по порядку списка,
// затем все клетки сетки по столбцам (x снаружи, y внутри).
func (b *Board) Tick() {
	b.tickEnemies()
	b.tickTowers()
	b.ticks++
}

func (b *Board) tickEnemies() {
	enemies := b.state.enemies
	dead := make([]bool, len(enemies))
	anyDead := false

	b.sweeping = true
	for i, e := range enemies {
		e.Tick(b)
		if e.IsDead() {
			dead[i] = true
			anyDead = true
		}
	}
	b.sweeping = false

	if anyDead {
		alive := make([]unit.Enemy, 0, len(enemies)+len(b.pending))
		for i, e := range enemies {
			if !dead[i] {
				alive = append(alive, e)
				continue
			}
			b.state.unregister(e)
			b.Dispatch(event.Event{Type: event.EnemyRemoved, Data: unitData(e)})
		}
		b.state.enemies = alive
	}

	if len(b.pending) > 0 {
		b.state.enemies = append(b.state.enemies, b.pending...)
		b.pending = nil
	}
}

func (b *Board) tickTowers() {
	grid := b.state.towers
	for x := range grid {
		for y := range grid[x] {
			current := grid[x][y]
			if current == nil {
				continue
			}
			current.Tick(b)
			// Клетку чистим, только если в ней всё ещё та же башня.
			if current.IsDead() && grid[x][y] == current {
				grid[x][y] = nil
				b.state.evict(current)
				b.Dispatch(event.Event{Type: event.TowerRemoved, Data: unitData(current)})
			}
		}
	}
}

func unitData(u unit.Unit) event.UnitData {
	return event.UnitData{ID: u.ID(), Kind: u.Kind().String()}
}
