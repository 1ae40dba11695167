// internal/tower/generator.go
package tower

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"
)

// Generator запитывает незапитанные башни вокруг себя и помнит их.
// Погибший генератор отпускает всех, кого запитал. Это ровно один шаг:
// отпущенный генератор отпустит своих подопечных на собственном тике,
// так что цепочка гаснет по звену за раз.
type Generator struct {
	PoweredBase
	reach    int
	powering []types.UnitID
	reg      unit.Registry // доска последнего тика, для UnPower
}

func NewGenerator(x, y, squareSize int) *Generator {
	return &Generator{
		PoweredBase: newPoweredBase(defs.KindGenerator, x, y, squareSize),
		reach:       defs.Def(defs.KindGenerator).Range,
	}
}

// Range: радиус в клетках.
func (g *Generator) Range() int { return g.reach }

// Powering возвращает копию списка запитанных башен.
func (g *Generator) Powering() []types.UnitID {
	out := make([]types.UnitID, len(g.powering))
	copy(out, g.powering)
	return out
}

func (g *Generator) Tick(b unit.Board) {
	if g.IsPowered() {
		g.poweredTick(b)
		return
	}
	if len(g.powering) > 0 {
		g.Release(b)
	}
}

// UnPower снимает питание с генератора и с тех, кого он запитал.
func (g *Generator) UnPower() {
	g.clearPower()
	if g.reg != nil {
		g.Release(g.reg)
	}
}

func (g *Generator) poweredTick(b unit.Board) {
	g.reg = b
	topLeft, bottomRight := unit.Area(g.GridPosition(), g.reach)
	for _, t := range b.AllTowersInArea(topLeft, bottomRight) {
		if t.ID() == g.ID() {
			continue
		}
		consumer, ok := t.(unit.Powered)
		if !ok || consumer.IsPowered() || g.fedBy(b, consumer.ID()) {
			continue
		}
		if consumer.Power(g.ID()) {
			g.powering = append(g.powering, consumer.ID())
		}
	}

	// Выкидываем погибших и снятых с доски
	alive := g.powering[:0]
	for _, id := range g.powering {
		if u := b.Lookup(id); u != nil && !u.IsDead() {
			alive = append(alive, id)
		}
	}
	g.powering = alive

	if g.IsDead() {
		g.UnPower()
	}
}

// fedBy: стоит ли id выше по цепочке питания генератора.
// Такой башне питание не отдаём, иначе цепочка замкнётся сама на себя.
func (g *Generator) fedBy(b unit.Board, id types.UnitID) bool {
	limit := b.NumSquares() * b.NumSquares()
	source := g.PoweredBy()
	for step := 0; step < limit; step++ {
		if source == id {
			return true
		}
		if source == types.NoUnit || source == types.LevelSupply {
			return false
		}
		link, ok := b.Lookup(source).(powerLink)
		if !ok {
			return false
		}
		source = link.PoweredBy()
	}
	return false
}

// Release снимает питание со всех башен, которые всё ещё запитаны этим генератором.
// Подопечные-генераторы своих подопечных здесь не отпускают.
func (g *Generator) Release(reg unit.Registry) {
	for _, id := range g.powering {
		consumer, ok := reg.Lookup(id).(powerLink)
		if ok && consumer.PoweredBy() == g.ID() {
			consumer.clearPower()
		}
	}
	g.powering = nil
}
