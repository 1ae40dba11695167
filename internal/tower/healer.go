// internal/tower/healer.go
package tower

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"
)

// HealAmount: сколько здоровья восстанавливает лекарь за тик.
const HealAmount = 1

// Healer чинит по одной повреждённой башне за тик. Terrain не чинится.
type Healer struct {
	PoweredBase
	reach      int
	lastTarget types.UnitID
}

func NewHealer(x, y, squareSize int) *Healer {
	return &Healer{
		PoweredBase: newPoweredBase(defs.KindHealer, x, y, squareSize),
		reach:       defs.Def(defs.KindHealer).Range,
	}
}

func (h *Healer) Range() int { return h.reach }

// LastTarget: башня, вылеченная в последний запитанный тик, для отрисовки луча.
func (h *Healer) LastTarget() types.UnitID { return h.lastTarget }

func (h *Healer) Tick(b unit.Board) {
	if h.IsPowered() {
		h.poweredTick(b)
	}
}

func (h *Healer) poweredTick(b unit.Board) {
	h.lastTarget = types.NoUnit
	topLeft, bottomRight := unit.Area(h.GridPosition(), h.reach)
	for _, t := range b.AllTowersInArea(topLeft, bottomRight) {
		if t.ID() == h.ID() || t.Kind() == defs.KindTerrain || !t.IsDamaged() {
			continue
		}
		t.ChangeHealth(HealAmount)
		h.lastTarget = t.ID()
		return
	}
}
