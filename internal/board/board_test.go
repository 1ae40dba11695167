package board_test

import (
	"errors"
	"testing"

	"go-hive-defense/internal/board"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/enemy"
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/tower"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"
	"go-hive-defense/internal/utils"
	"go-hive-defense/pkg/geom"
)

const testSquare = 20

func newTestBoard(t *testing.T, events *event.Dispatcher) *board.Board {
	t.Helper()
	state, err := board.NewStateSized(10, testSquare, 1000)
	if err != nil {
		t.Fatalf("NewStateSized: %v", err)
	}
	return board.New(state, utils.NewPRNGService(7), events)
}

// counter: враг, который считает свои тики и может умереть по команде.
type counter struct {
	unit.EnemyBase
	ticks  int
	dieOn  int
	onTick func(b unit.Board)
}

func newCounter(x, y int) *counter {
	return &counter{EnemyBase: unit.NewEnemyBase(defs.KindBurrower, x, y, testSquare)}
}

func (c *counter) Tick(b unit.Board) {
	c.ticks++
	if c.onTick != nil {
		c.onTick(b)
	}
	if c.dieOn > 0 && c.ticks >= c.dieOn {
		c.Destroy()
	}
}

func TestNewState(t *testing.T) {
	tests := []struct {
		name       string
		numSquares int
		wantSquare int
		wantErr    bool
	}{
		{"Default", 45, 20, false},
		{"Coarse", 20, 45, false},
		{"Uneven", 7, 128, false},
		{"Zero", 0, 0, true},
		{"Too many", 901, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := board.NewState(tt.numSquares, 100)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && state.SquareSize() != tt.wantSquare {
				t.Errorf("SquareSize = %d, want %d", state.SquareSize(), tt.wantSquare)
			}
		})
	}
}

func TestSameCellTolerance(t *testing.T) {
	b := newTestBoard(t, nil)
	terrain := tower.NewTerrain(100, 100, testSquare)
	b.AddUnit(terrain)

	got, err := b.Search().TowerAtPosition(geom.Pt(105, 109))
	if err != nil {
		t.Fatalf("TowerAtPosition: %v", err)
	}
	if got != unit.Tower(terrain) {
		t.Errorf("got %v, want the terrain", got)
	}
}

func TestOffscreen(t *testing.T) {
	b := newTestBoard(t, nil)
	tests := []struct {
		name                     string
		g                        geom.Point
		left, right, top, bottom bool
	}{
		{"Left", geom.Pt(-1, 3), true, false, false, false},
		{"Right", geom.Pt(10, 3), false, true, false, false},
		{"Top", geom.Pt(3, -1), false, false, true, false},
		{"Bottom right", geom.Pt(10, 12), false, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Search().TowerAtGridPosition(tt.g)
			if got != nil {
				t.Error("off-board query returned a tower")
			}
			if !errors.Is(err, board.ErrOffscreen) {
				t.Fatalf("err = %v, want ErrOffscreen", err)
			}
			var off *board.OffscreenError
			if !errors.As(err, &off) {
				t.Fatal("error should be an *OffscreenError")
			}
			if off.Left != tt.left || off.Right != tt.right || off.Top != tt.top || off.Bottom != tt.bottom {
				t.Errorf("edges = %+v", off)
			}
		})
	}

	if _, err := b.Search().TowerAtPosition(geom.Pt(-1, 0)); !errors.Is(err, board.ErrOffscreen) {
		t.Error("pixel -1 floors to cell -1 and must be off board")
	}
}

func TestAbsoluteToGridPosition(t *testing.T) {
	s := newTestBoard(t, nil).Search()
	tests := []struct {
		p, want geom.Point
	}{
		{geom.Pt(0, 0), geom.Pt(0, 0)},
		{geom.Pt(19, 39), geom.Pt(0, 1)},
		{geom.Pt(-1, -21), geom.Pt(-1, -2)},
	}
	for _, tt := range tests {
		if got := s.AbsoluteToGridPosition(tt.p); got != tt.want {
			t.Errorf("AbsoluteToGridPosition(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestAllTowersInAreaOrder(t *testing.T) {
	b := newTestBoard(t, nil)
	cells := []geom.Point{geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(0, 0), geom.Pt(5, 5)}
	for _, c := range cells {
		b.AddUnit(tower.NewBlocker(c.X*testSquare, c.Y*testSquare, testSquare))
	}

	found := b.Search().AllTowersInArea(geom.Pt(-2, -2), geom.Pt(1, 1))

	want := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0)}
	if len(found) != len(want) {
		t.Fatalf("found %d towers, want %d", len(found), len(want))
	}
	for i, tw := range found {
		if tw.GridPosition() != want[i] {
			t.Errorf("found[%d] at %v, want %v", i, tw.GridPosition(), want[i])
		}
	}
}

func TestEnemySearchSkipsHives(t *testing.T) {
	b := newTestBoard(t, nil)
	hive := enemy.NewHive(40, 40, testSquare, b.Rand())
	first := newCounter(45, 45)
	second := newCounter(50, 50)
	b.AddUnit(hive)
	b.AddUnit(first)
	b.AddUnit(second)
	s := b.Search()

	if got := s.FirstEnemyInArea(geom.Pt(2, 2), geom.Pt(2, 2)); got != unit.Enemy(first) {
		t.Errorf("FirstEnemyInArea = %v, want the first counter", got)
	}
	if got := s.AllEnemiesInArea(geom.Pt(0, 0), geom.Pt(9, 9)); len(got) != 2 {
		t.Errorf("AllEnemiesInArea found %d, want 2", len(got))
	}
	if got := s.AllEnemies(); len(got) != 3 {
		t.Errorf("AllEnemies = %d, want 3 including the hive", len(got))
	}
	if got := s.FirstEnemyInArea(geom.Pt(5, 5), geom.Pt(9, 9)); got != nil {
		t.Errorf("empty area returned %v", got)
	}
}

func TestPlacementRejectedOnEnemy(t *testing.T) {
	events := event.NewDispatcher()
	rejected := 0
	events.Subscribe(event.PlacementRejected, event.ListenerFunc(func(event.Event) { rejected++ }))
	b := newTestBoard(t, events)
	b.AddUnit(newCounter(5, 5))

	blocker := tower.NewBlocker(0, 0, testSquare)
	b.AddUnit(blocker)

	if got, _ := b.Search().TowerAtGridPosition(geom.Pt(0, 0)); got != nil {
		t.Errorf("tower placed on an enemy: %v", got)
	}
	if blocker.ID() != types.NoUnit || b.Lookup(blocker.ID()) != nil {
		t.Error("rejected tower must not be registered")
	}
	if rejected != 1 {
		t.Errorf("PlacementRejected dispatched %d times", rejected)
	}
}

func TestPlacementOverwrites(t *testing.T) {
	b := newTestBoard(t, nil)
	terrain := tower.NewTerrain(60, 60, testSquare)
	b.AddUnit(terrain)
	shooter := tower.NewShooter(65, 79, testSquare)
	b.AddUnit(shooter)

	got, _ := b.Search().TowerAtGridPosition(geom.Pt(3, 3))
	if got != unit.Tower(shooter) {
		t.Errorf("cell holds %v, want the shooter", got)
	}
	if b.Lookup(terrain.ID()) != nil {
		t.Error("overwritten terrain should be unregistered")
	}
	if b.Lookup(shooter.ID()) == nil {
		t.Error("new tower should be registered")
	}
}

type bogus struct {
	unit.Base
}

func (bogus) Position() geom.Point     { return geom.Point{} }
func (bogus) GridPosition() geom.Point { return geom.Point{} }
func (bogus) Center() geom.Point       { return geom.Point{} }
func (bogus) Tick(unit.Board)          {}

func TestAddUnitPanicsOnUnknownUnit(t *testing.T) {
	b := newTestBoard(t, nil)
	defer func() {
		if recover() == nil {
			t.Error("AddUnit should panic on a unit that is neither tower nor enemy")
		}
	}()
	b.AddUnit(&bogus{Base: unit.NewBase(defs.KindBlocker, testSquare)})
}

func TestTickOrder(t *testing.T) {
	b := newTestBoard(t, nil)
	gen := tower.NewGenerator(0, 20, testSquare)
	gen.Power(types.LevelSupply)
	probe := tower.NewShooter(0, 40, testSquare)
	c := newCounter(5, 5)
	poweredDuringEnemySweep := false
	c.onTick = func(unit.Board) { poweredDuringEnemySweep = probe.IsPowered() }
	b.AddUnit(c)
	b.AddUnit(gen)
	b.AddUnit(probe)

	b.Tick()

	if poweredDuringEnemySweep {
		t.Error("enemies must tick before towers")
	}
	// Генератор выше по столбцу запитывает стрелка в том же проходе
	if !probe.IsPowered() || probe.LastTarget() != c.ID() {
		t.Error("shooter below the generator should be powered and fire this tick")
	}
	if b.TickCount() != 1 {
		t.Errorf("TickCount = %d", b.TickCount())
	}
}

func TestDeadEnemiesRemovedAfterTheirTick(t *testing.T) {
	events := event.NewDispatcher()
	removed := 0
	events.Subscribe(event.EnemyRemoved, event.ListenerFunc(func(event.Event) { removed++ }))
	b := newTestBoard(t, events)
	doomed := newCounter(5, 5)
	doomed.dieOn = 1
	survivor := newCounter(25, 25)
	b.AddUnit(doomed)
	b.AddUnit(survivor)

	b.Tick()

	if doomed.ticks != 1 || survivor.ticks != 1 {
		t.Errorf("ticks = %d/%d, every enemy ticks once", doomed.ticks, survivor.ticks)
	}
	enemies := b.Enemies()
	if len(enemies) != 1 || enemies[0] != unit.Enemy(survivor) {
		t.Fatalf("enemies = %v", enemies)
	}
	if b.Lookup(doomed.ID()) != nil || removed != 1 {
		t.Error("dead enemy should be unregistered with one EnemyRemoved")
	}

	// Уже мёртвый враг тоже получает свой тик перед удалением
	late := newCounter(45, 45)
	late.Destroy()
	b.AddUnit(late)
	b.Tick()
	if late.ticks != 1 || len(b.Enemies()) != 1 {
		t.Errorf("late.ticks = %d, enemies = %d", late.ticks, len(b.Enemies()))
	}
}

func TestSpawnsDuringSweepWaitForNextTick(t *testing.T) {
	b := newTestBoard(t, nil)
	var child *counter
	parent := newCounter(5, 5)
	parent.onTick = func(ub unit.Board) {
		if child == nil {
			child = newCounter(85, 85)
			ub.AddUnit(child)
		}
	}
	b.AddUnit(parent)

	b.Tick()
	if child == nil || child.ticks != 0 {
		t.Fatal("spawned enemy must not tick in the frame it was added")
	}
	if len(b.Enemies()) != 2 || b.Lookup(child.ID()) == nil {
		t.Fatal("spawned enemy should be appended and registered after the sweep")
	}

	b.Tick()
	if child.ticks != 1 {
		t.Errorf("child ticks = %d, want 1", child.ticks)
	}
}

func TestDeadTowerCleared(t *testing.T) {
	events := event.NewDispatcher()
	var removed []event.UnitData
	events.Subscribe(event.TowerRemoved, event.ListenerFunc(func(e event.Event) {
		removed = append(removed, e.Data.(event.UnitData))
	}))
	b := newTestBoard(t, events)
	blocker := tower.NewBlocker(20, 20, testSquare)
	b.AddUnit(blocker)
	id := blocker.ID()
	blocker.Destroy()

	b.Tick()

	if got, _ := b.Search().TowerAtGridPosition(geom.Pt(1, 1)); got != nil {
		t.Error("dead tower should be cleared from its cell")
	}
	if b.Lookup(id) != nil {
		t.Error("dead tower should be unregistered")
	}
	if len(removed) != 1 || removed[0].ID != id || removed[0].Kind != "BLOCKER" {
		t.Errorf("TowerRemoved events = %+v", removed)
	}
}

func TestCountTowers(t *testing.T) {
	b := newTestBoard(t, nil)
	b.AddUnit(tower.NewGenerator(0, 0, testSquare))
	b.AddUnit(tower.NewGenerator(40, 0, testSquare))
	b.AddUnit(tower.NewTerrain(80, 0, testSquare))
	if got := b.State().CountTowers(defs.KindGenerator); got != 2 {
		t.Errorf("CountTowers = %d, want 2", got)
	}
}
