// internal/tower/powered.go
package tower

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"
)

// PoweredBase: общая часть башен, которым нужна энергия.
// Башня без источника ничего не делает.
type PoweredBase struct {
	unit.TowerBase
	poweredBy types.UnitID
}

func newPoweredBase(kind defs.Kind, x, y, squareSize int) PoweredBase {
	return PoweredBase{TowerBase: unit.NewTowerBase(kind, x, y, squareSize)}
}

func (p *PoweredBase) IsPowered() bool         { return p.poweredBy != types.NoUnit }
func (p *PoweredBase) PoweredBy() types.UnitID { return p.poweredBy }

// Power запитывает башню, только если она ещё не запитана. Первый источник выигрывает.
func (p *PoweredBase) Power(source types.UnitID) bool {
	if p.IsPowered() || source == types.NoUnit {
		return false
	}
	p.poweredBy = source
	return true
}

// UnPower снимает питание безусловно.
func (p *PoweredBase) UnPower() {
	p.clearPower()
}

func (p *PoweredBase) clearPower() {
	p.poweredBy = types.NoUnit
}

// powerLink: то, что генератор снимает с подопечного, не трогая его собственных подопечных.
type powerLink interface {
	PoweredBy() types.UnitID
	clearPower()
}
