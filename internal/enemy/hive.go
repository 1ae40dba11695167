// internal/enemy/hive.go
package enemy

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/unit"
	"go-hive-defense/internal/utils"
	"go-hive-defense/pkg/geom"
)

// hiveLifetimeWrap ограничивает счётчик тиков улья.
const hiveLifetimeWrap = 100000

// Hive: бессмертный неподвижный улей, который выпускает землекопов и маток.
// Генератор случайных чисел общий на процесс и передаётся снаружи.
type Hive struct {
	unit.EnemyBase
	rng             *utils.PRNGService
	lifetime        int
	cadenceBurrower int
	cadenceQueen    int
}

// NewHive прижимает позицию к началу клетки.
func NewHive(x, y, squareSize int, rng *utils.PRNGService) *Hive {
	p := geom.Pt(x, y).Snap(squareSize)
	def := defs.Def(defs.KindHive)
	return &Hive{
		EnemyBase:       unit.NewEnemyBase(defs.KindHive, p.X, p.Y, squareSize),
		rng:             rng,
		cadenceBurrower: def.CadenceBurrower,
		cadenceQueen:    def.CadenceQueen,
	}
}

// IsDead всегда false: улей не убить ни уроном, ни Destroy.
func (h *Hive) IsDead() bool { return false }

func (h *Hive) Lifetime() int { return h.lifetime }

func (h *Hive) Tick(b unit.Board) {
	h.lifetime = (h.lifetime + 1) % hiveLifetimeWrap
	if h.cadenceBurrower > 0 && h.lifetime%h.cadenceBurrower == 0 {
		c := h.Center()
		b.AddUnit(NewBurrower(c.X, c.Y, h.randomTarget(b), h.SquareSize()))
	}
	if h.cadenceQueen > 0 && h.lifetime%h.cadenceQueen == 0 {
		c := h.Center()
		b.AddUnit(NewQueen(c.X, c.Y, h.randomTarget(b), h.SquareSize()))
	}
}

// randomTarget: точка где угодно в диапазоне int32, обычно далеко за доской.
func (h *Hive) randomTarget(b unit.Board) geom.Point {
	rng := h.rng
	if rng == nil {
		rng = b.Rand()
	}
	y := int(rng.Int32())
	x := int(rng.Int32())
	return geom.Pt(x, y)
}
