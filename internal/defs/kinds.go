// internal/defs/kinds.go
package defs

import "fmt"

// Kind identifies a concrete unit type. The set is closed: five towers and three enemies.
type Kind int

const (
	KindTerrain Kind = iota
	KindBlocker
	KindGenerator
	KindHealer
	KindShooter
	KindHive
	KindBurrower
	KindQueen
)

var kindNames = map[Kind]string{
	KindTerrain:   "TERRAIN",
	KindBlocker:   "BLOCKER",
	KindGenerator: "GENERATOR",
	KindHealer:    "HEALER",
	KindShooter:   "SHOOTER",
	KindHive:      "HIVE",
	KindBurrower:  "BURROWER",
	KindQueen:     "QUEEN",
}

// AllKinds lists every kind in declaration order.
var AllKinds = []Kind{
	KindTerrain, KindBlocker, KindGenerator, KindHealer, KindShooter,
	KindHive, KindBurrower, KindQueen,
}

// BuyableKinds are the towers the player can place, in purchase-menu order.
var BuyableKinds = []Kind{KindBlocker, KindGenerator, KindShooter, KindHealer}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// IsTower reports whether units of this kind occupy a grid cell.
func (k Kind) IsTower() bool {
	return k >= KindTerrain && k <= KindShooter
}

// IsPowered reports whether towers of this kind need a generator to act.
func (k Kind) IsPowered() bool {
	return k == KindGenerator || k == KindHealer || k == KindShooter
}

// ParseKind maps a definition id such as "SHOOTER" back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown unit kind %q", name)
}
