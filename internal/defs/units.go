// internal/defs/units.go
package defs

// UnitDefinition holds all the static data for a specific kind of unit.
// Fields that do not apply to a kind stay zero.
type UnitDefinition struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Health int    `json:"health"`
	// Size is the draw and hitbox size measured against config.ReferenceSquare.
	Size int `json:"size"`
	// Speed is a divisor: per-tick displacement is squareSize / Speed,
	// so larger numbers are slower.
	Speed  float64 `json:"speed,omitempty"`
	Range  int     `json:"range,omitempty"`
	Damage int     `json:"damage,omitempty"`
	// Delay is the firing delay of a Shooter and the founding delay of a Queen, in ticks.
	Delay           int `json:"delay,omitempty"`
	CadenceBurrower int `json:"cadence_burrower,omitempty"`
	CadenceQueen    int `json:"cadence_queen,omitempty"`
}

// UnitLibrary is the library of all unit definitions, keyed by kind.
var UnitLibrary map[Kind]UnitDefinition

func init() {
	ResetUnitDefinitions()
}

// DefaultUnitDefinitions returns the built-in stats.
func DefaultUnitDefinitions() map[Kind]UnitDefinition {
	return map[Kind]UnitDefinition{
		KindTerrain:   {ID: "TERRAIN", Name: "Terrain", Health: 200, Size: 20},
		KindBlocker:   {ID: "BLOCKER", Name: "Blocker", Health: 1000, Size: 20},
		KindGenerator: {ID: "GENERATOR", Name: "Generator", Health: 300, Size: 20, Range: 1},
		KindHealer:    {ID: "HEALER", Name: "Healer", Health: 350, Size: 20, Range: 2},
		KindShooter:   {ID: "SHOOTER", Name: "Shooter", Health: 400, Size: 20, Range: 3, Damage: 3, Delay: 75},
		KindHive: {ID: "HIVE", Name: "Hive", Health: 1, Size: 20,
			CadenceBurrower: 100, CadenceQueen: 1000},
		KindBurrower: {ID: "BURROWER", Name: "Burrower", Health: 10, Size: 10, Speed: 100},
		KindQueen:    {ID: "QUEEN", Name: "Queen", Health: 7, Size: 6, Speed: 200, Delay: 500},
	}
}

// ResetUnitDefinitions restores the built-in stats.
func ResetUnitDefinitions() {
	UnitLibrary = DefaultUnitDefinitions()
}

// Def returns the definition for kind. Unknown kinds fall back to the built-in entry.
func Def(kind Kind) UnitDefinition {
	if def, ok := UnitLibrary[kind]; ok {
		return def
	}
	return DefaultUnitDefinitions()[kind]
}
