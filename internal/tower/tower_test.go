package tower

import (
	"testing"

	"go-hive-defense/internal/board"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"
	"go-hive-defense/internal/utils"
	"go-hive-defense/pkg/geom"
)

const testSquare = 20

// target: неподвижный враг, который запоминает каждое изменение здоровья.
type target struct {
	unit.EnemyBase
	deltas []int
}

func newTarget(kind defs.Kind, x, y int) *target {
	return &target{EnemyBase: unit.NewEnemyBase(kind, x, y, testSquare)}
}

func (e *target) Tick(unit.Board) {}

func (e *target) ChangeHealth(delta int) {
	e.deltas = append(e.deltas, delta)
	e.EnemyBase.ChangeHealth(delta)
}

func newTestBoard(t *testing.T, events *event.Dispatcher) *board.Board {
	t.Helper()
	state, err := board.NewStateSized(10, testSquare, 1000)
	if err != nil {
		t.Fatalf("NewStateSized: %v", err)
	}
	return board.New(state, utils.NewPRNGService(1), events)
}

func TestPowerIsFirstWriterWins(t *testing.T) {
	shooter := NewShooter(20, 20, testSquare)
	if shooter.IsPowered() {
		t.Fatal("new shooter should start unpowered")
	}
	if !shooter.Power(7) {
		t.Fatal("first Power should succeed")
	}
	if shooter.Power(9) {
		t.Error("second Power should fail")
	}
	if shooter.PoweredBy() != 7 {
		t.Errorf("PoweredBy = %d, want 7", shooter.PoweredBy())
	}
	shooter.UnPower()
	if shooter.IsPowered() {
		t.Error("UnPower should clear the source")
	}
	if shooter.Power(types.NoUnit) {
		t.Error("NoUnit is not a power source")
	}
}

func TestGeneratorPowersNeighbours(t *testing.T) {
	b := newTestBoard(t, nil)
	gen := NewGenerator(2*testSquare, 2*testSquare, testSquare)
	gen.Power(types.LevelSupply)
	near := NewShooter(3*testSquare, 2*testSquare, testSquare)
	diagonal := NewHealer(1*testSquare, 1*testSquare, testSquare)
	far := NewShooter(5*testSquare, 5*testSquare, testSquare)
	wall := NewBlocker(2*testSquare, 3*testSquare, testSquare)
	for _, u := range []unit.Unit{gen, near, diagonal, far, wall} {
		b.AddUnit(u)
	}

	b.Tick()

	if near.PoweredBy() != gen.ID() || diagonal.PoweredBy() != gen.ID() {
		t.Errorf("towers in range should be powered by %d, got %d and %d",
			gen.ID(), near.PoweredBy(), diagonal.PoweredBy())
	}
	if far.IsPowered() {
		t.Error("tower out of range should stay unpowered")
	}
	if gen.PoweredBy() != types.LevelSupply {
		t.Error("generator must not take power from itself")
	}
	if got := len(gen.Powering()); got != 2 {
		t.Errorf("Powering() has %d entries, want 2", got)
	}
}

func TestUnpoweredGeneratorIsIdle(t *testing.T) {
	b := newTestBoard(t, nil)
	gen := NewGenerator(2*testSquare, 2*testSquare, testSquare)
	shooter := NewShooter(3*testSquare, 2*testSquare, testSquare)
	b.AddUnit(gen)
	b.AddUnit(shooter)

	b.Tick()

	if shooter.IsPowered() || len(gen.Powering()) != 0 {
		t.Error("an unpowered generator should not power anything")
	}
}

func TestGeneratorCascade(t *testing.T) {
	t.Run("Death releases direct consumers first", func(t *testing.T) {
		b := newTestBoard(t, nil)
		// Источник правее, поэтому звенья цепочки тикают раньше него
		first := NewGenerator(5*testSquare, 2*testSquare, testSquare)
		first.Power(types.LevelSupply)
		second := NewGenerator(4*testSquare, 2*testSquare, testSquare)
		shooter := NewShooter(3*testSquare, 2*testSquare, testSquare)
		b.AddUnit(first)
		b.AddUnit(second)
		b.AddUnit(shooter)

		b.Tick()
		b.Tick()
		if second.PoweredBy() != first.ID() || shooter.PoweredBy() != second.ID() {
			t.Fatalf("chain not built: second=%d shooter=%d", second.PoweredBy(), shooter.PoweredBy())
		}

		first.Destroy()
		b.Tick()

		if second.IsPowered() {
			t.Error("direct consumer should lose power when its generator dies")
		}
		if shooter.PoweredBy() != second.ID() {
			t.Error("the second hop should still be powered on the tick of the death")
		}
		if tower, _ := b.TowerAtGridPosition(geom.Pt(5, 2)); tower != nil {
			t.Error("dead generator should be removed from its cell")
		}

		b.Tick()

		if shooter.IsPowered() {
			t.Errorf("second hop should be released a tick later, powered by %d", shooter.PoweredBy())
		}
		if len(second.Powering()) != 0 {
			t.Error("unpowered generator should track nobody")
		}
	})

	t.Run("Chain without a source collapses", func(t *testing.T) {
		tests := []struct {
			name                   string
			source, bought, second geom.Point
			shooter                geom.Point
		}{
			{"Source ticks first", geom.Pt(2, 2), geom.Pt(3, 2), geom.Pt(4, 3), geom.Pt(4, 2)},
			{"Source ticks last", geom.Pt(6, 2), geom.Pt(5, 2), geom.Pt(4, 2), geom.Pt(3, 2)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b := newTestBoard(t, nil)
				source := NewGenerator(tt.source.X*testSquare, tt.source.Y*testSquare, testSquare)
				source.Power(types.LevelSupply)
				bought := NewGenerator(tt.bought.X*testSquare, tt.bought.Y*testSquare, testSquare)
				second := NewGenerator(tt.second.X*testSquare, tt.second.Y*testSquare, testSquare)
				shooter := NewShooter(tt.shooter.X*testSquare, tt.shooter.Y*testSquare, testSquare)
				b.AddUnit(source)
				b.AddUnit(bought)
				b.AddUnit(second)
				b.AddUnit(shooter)

				for i := 0; i < 4; i++ {
					b.Tick()
				}
				if !bought.IsPowered() || !second.IsPowered() || !shooter.IsPowered() {
					t.Fatalf("chain not built: bought=%d second=%d shooter=%d",
						bought.PoweredBy(), second.PoweredBy(), shooter.PoweredBy())
				}

				source.Destroy()
				for i := 0; i < 20; i++ {
					b.Tick()
				}

				for _, p := range []*PoweredBase{&bought.PoweredBase, &second.PoweredBase, &shooter.PoweredBase} {
					if p.IsPowered() {
						t.Errorf("%v still powered by %d with no live source", p.Kind(), p.PoweredBy())
					}
				}
			})
		}
	})

	t.Run("Direct UnPower", func(t *testing.T) {
		b := newTestBoard(t, nil)
		gen := NewGenerator(2*testSquare, 2*testSquare, testSquare)
		gen.Power(types.LevelSupply)
		healer := NewHealer(2*testSquare, 3*testSquare, testSquare)
		b.AddUnit(gen)
		b.AddUnit(healer)
		b.Tick()
		if !healer.IsPowered() {
			t.Fatal("healer should be powered after one tick")
		}

		gen.UnPower()

		if healer.IsPowered() {
			t.Error("UnPower on a generator should release its consumers")
		}
		if len(gen.Powering()) != 0 {
			t.Error("released generator should track nobody")
		}
	})

	t.Run("Overwritten generator", func(t *testing.T) {
		b := newTestBoard(t, nil)
		gen := NewGenerator(2*testSquare, 2*testSquare, testSquare)
		gen.Power(types.LevelSupply)
		shooter := NewShooter(2*testSquare, 1*testSquare, testSquare)
		b.AddUnit(gen)
		b.AddUnit(shooter)
		b.Tick()

		b.AddUnit(NewBlocker(2*testSquare, 2*testSquare, testSquare))

		if shooter.IsPowered() {
			t.Error("replacing a generator should release its consumers")
		}
		if b.Lookup(gen.ID()) != nil {
			t.Error("replaced generator should be unregistered")
		}
	})
}

func TestGeneratorPrunesDeadConsumers(t *testing.T) {
	b := newTestBoard(t, nil)
	gen := NewGenerator(2*testSquare, 2*testSquare, testSquare)
	gen.Power(types.LevelSupply)
	shooter := NewShooter(2*testSquare, 3*testSquare, testSquare)
	b.AddUnit(gen)
	b.AddUnit(shooter)
	b.Tick()

	shooter.Destroy()
	b.Tick()

	if got := gen.Powering(); len(got) != 0 {
		t.Errorf("Powering() = %v, want empty", got)
	}
}

func TestHealer(t *testing.T) {
	b := newTestBoard(t, nil)
	healer := NewHealer(2*testSquare, 2*testSquare, testSquare)
	healer.Power(types.LevelSupply)
	terrain := NewTerrain(2*testSquare, 3*testSquare, testSquare)
	blocker := NewBlocker(3*testSquare, 3*testSquare, testSquare)
	for _, u := range []unit.Unit{healer, terrain, blocker} {
		b.AddUnit(u)
	}
	healer.ChangeHealth(-10)
	terrain.ChangeHealth(-10)
	blocker.ChangeHealth(-10)

	b.Tick()

	if blocker.Health() != blocker.InitialHealth()-10+HealAmount {
		t.Errorf("blocker health = %d, want one point healed", blocker.Health())
	}
	if terrain.Health() != terrain.InitialHealth()-10 {
		t.Error("terrain must never be healed")
	}
	if healer.Health() != healer.InitialHealth()-10 {
		t.Error("healer must not heal itself")
	}
	if healer.LastTarget() != blocker.ID() {
		t.Errorf("LastTarget = %d, want %d", healer.LastTarget(), blocker.ID())
	}

	// Нечего лечить: цель сбрасывается
	blocker.ChangeHealth(blocker.InitialHealth())
	b.Tick()
	if healer.LastTarget() != types.NoUnit {
		t.Error("LastTarget should reset when nothing was healed")
	}
}

func TestShooterCooldown(t *testing.T) {
	events := event.NewDispatcher()
	var shots []event.ShotData
	events.Subscribe(event.ShotFired, event.ListenerFunc(func(e event.Event) {
		shots = append(shots, e.Data.(event.ShotData))
	}))
	b := newTestBoard(t, events)
	shooter := NewShooter(2*testSquare, 2*testSquare, testSquare)
	shooter.Power(types.LevelSupply)
	b.AddUnit(shooter)
	enemy := newTarget(defs.KindBurrower, 60+5, 40+5)
	b.State().AppendEnemy(enemy)

	delay := defs.Def(defs.KindShooter).Delay
	damage := defs.Def(defs.KindShooter).Damage

	b.Tick()
	if len(enemy.deltas) != 1 || enemy.deltas[0] != -damage {
		t.Fatalf("shooter starts loaded: deltas = %v", enemy.deltas)
	}
	if shooter.LastTarget() != enemy.ID() {
		t.Error("LastTarget should be the enemy just hit")
	}

	b.Tick()
	if len(enemy.deltas) != 1 {
		t.Fatalf("fired again right after a shot: deltas = %v", enemy.deltas)
	}
	if shooter.LastTarget() != types.NoUnit {
		t.Error("LastTarget resets on a tick without a shot")
	}

	for i := 2; i < delay; i++ {
		b.Tick()
	}
	if len(enemy.deltas) != 1 {
		t.Fatalf("fired before the delay elapsed: deltas = %v", enemy.deltas)
	}

	b.Tick()
	if len(enemy.deltas) != 2 {
		t.Fatalf("expected a second shot after %d ticks, deltas = %v", delay, enemy.deltas)
	}
	if len(shots) != 2 || shots[0].Target != enemy.ID() || shots[0].Damage != damage {
		t.Errorf("ShotFired events = %+v", shots)
	}
}

func TestShooterIgnoresHivesAndOutOfRange(t *testing.T) {
	b := newTestBoard(t, nil)
	shooter := NewShooter(2*testSquare, 2*testSquare, testSquare)
	shooter.Power(types.LevelSupply)
	b.AddUnit(shooter)
	hive := newTarget(defs.KindHive, 60, 60)
	far := newTarget(defs.KindBurrower, 180, 180)
	b.State().AppendEnemy(hive)
	b.State().AppendEnemy(far)

	b.Tick()

	if len(hive.deltas) != 0 || len(far.deltas) != 0 {
		t.Errorf("nothing should be hit: hive=%v far=%v", hive.deltas, far.deltas)
	}
	if shooter.Cooldown() != defs.Def(defs.KindShooter).Delay+1 {
		t.Errorf("cooldown keeps counting without a target, got %d", shooter.Cooldown())
	}
}

func TestUnpoweredShooterHoldsFire(t *testing.T) {
	b := newTestBoard(t, nil)
	shooter := NewShooter(2*testSquare, 2*testSquare, testSquare)
	b.AddUnit(shooter)
	enemy := newTarget(defs.KindBurrower, 65, 45)
	b.State().AppendEnemy(enemy)

	for i := 0; i < 100; i++ {
		b.Tick()
	}
	if len(enemy.deltas) != 0 {
		t.Errorf("unpowered shooter fired: %v", enemy.deltas)
	}
}

func TestInertTowers(t *testing.T) {
	b := newTestBoard(t, nil)
	terrain := NewTerrain(0*testSquare, 0*testSquare, testSquare)
	blocker := NewBlocker(1*testSquare, 0*testSquare, testSquare)
	b.AddUnit(terrain)
	b.AddUnit(blocker)
	b.Tick()
	if terrain.Health() != 200 || blocker.Health() != 1000 {
		t.Errorf("health = %d/%d, want 200/1000", terrain.Health(), blocker.Health())
	}
}

func TestNew(t *testing.T) {
	for _, kind := range defs.AllKinds {
		tw, err := New(kind, 45, 45, testSquare)
		if kind.IsTower() != (err == nil) {
			t.Errorf("New(%s) err = %v", kind, err)
			continue
		}
		if err != nil {
			continue
		}
		if tw.Kind() != kind || tw.Position() != geom.Pt(40, 40) {
			t.Errorf("New(%s) = %s at %v", kind, tw.Kind(), tw.Position())
		}
		if _, powered := tw.(unit.Powered); powered != kind.IsPowered() {
			t.Errorf("%s powered = %v", kind, powered)
		}
	}
}
