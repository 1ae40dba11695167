// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadUnitDefinitions reads a JSON array of unit definitions and overrides
// the matching entries of UnitLibrary. Kinds missing from the file keep their stats.
func LoadUnitDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read unit definitions file: %w", err)
	}
	return ApplyUnitDefinitions(file)
}

// ApplyUnitDefinitions is LoadUnitDefinitions without the file read.
func ApplyUnitDefinitions(data []byte) error {
	var unitDefs []UnitDefinition
	if err := json.Unmarshal(data, &unitDefs); err != nil {
		return fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	// Сначала проверяем всё, чтобы не применить файл наполовину
	parsed := make(map[Kind]UnitDefinition, len(unitDefs))
	for _, def := range unitDefs {
		kind, err := ParseKind(def.ID)
		if err != nil {
			return fmt.Errorf("invalid unit definition: %w", err)
		}
		if def.Health <= 0 {
			return fmt.Errorf("invalid unit definition %s: health must be positive", def.ID)
		}
		if def.Size <= 0 {
			return fmt.Errorf("invalid unit definition %s: size must be positive", def.ID)
		}
		if (kind == KindBurrower || kind == KindQueen) && def.Speed <= 0 {
			return fmt.Errorf("invalid unit definition %s: speed must be positive", def.ID)
		}
		if kind == KindHive && (def.CadenceBurrower <= 0 || def.CadenceQueen <= 0) {
			return fmt.Errorf("invalid unit definition %s: cadences must be positive", def.ID)
		}
		parsed[kind] = def
	}

	for kind, def := range parsed {
		UnitLibrary[kind] = def
	}

	log.Printf("defs: loaded %d unit definitions", len(parsed))
	return nil
}
