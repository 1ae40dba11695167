package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDefinitions(t *testing.T) {
	tests := []struct {
		kind   Kind
		health int
		size   int
	}{
		{KindTerrain, 200, 20},
		{KindBlocker, 1000, 20},
		{KindGenerator, 300, 20},
		{KindHealer, 350, 20},
		{KindShooter, 400, 20},
		{KindBurrower, 10, 10},
		{KindQueen, 7, 6},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			def := Def(tt.kind)
			if def.Health != tt.health {
				t.Errorf("Expected health %d, got %d", tt.health, def.Health)
			}
			if def.Size != tt.size {
				t.Errorf("Expected size %d, got %d", tt.size, def.Size)
			}
		})
	}

	if Def(KindHive).CadenceBurrower >= Def(KindHive).CadenceQueen {
		t.Error("Burrower cadence should be shorter than Queen cadence")
	}
}

func TestKindClassification(t *testing.T) {
	for _, k := range AllKinds {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%s) = %v, %v", k, parsed, err)
		}
	}
	if !KindShooter.IsTower() || KindHive.IsTower() {
		t.Error("tower classification is wrong")
	}
	if KindTerrain.IsPowered() || !KindGenerator.IsPowered() {
		t.Error("powered classification is wrong")
	}
	if _, err := ParseKind("DRAGON"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestLoadUnitDefinitionsOverrides(t *testing.T) {
	t.Cleanup(ResetUnitDefinitions)

	path := filepath.Join(t.TempDir(), "units.json")
	data := `[{"id": "SHOOTER", "name": "Sniper", "health": 50, "size": 20, "range": 6, "damage": 9, "delay": 10}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadUnitDefinitions(path); err != nil {
		t.Fatalf("LoadUnitDefinitions: %v", err)
	}

	def := Def(KindShooter)
	if def.Health != 50 || def.Range != 6 || def.Damage != 9 || def.Delay != 10 {
		t.Errorf("override not applied: %+v", def)
	}
	if Def(KindBlocker).Health != 1000 {
		t.Error("kinds missing from the file must keep their stats")
	}
}

func TestApplyUnitDefinitionsRejectsBadInput(t *testing.T) {
	t.Cleanup(ResetUnitDefinitions)

	tests := []struct {
		name string
		data string
	}{
		{"Not JSON", `{`},
		{"Unknown kind", `[{"id": "DRAGON", "health": 5, "size": 5}]`},
		{"Zero health", `[{"id": "BLOCKER", "health": 0, "size": 20}]`},
		{"Mover without speed", `[{"id": "QUEEN", "health": 7, "size": 6}]`},
		{"Hive without cadence", `[{"id": "HIVE", "health": 1, "size": 20}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ApplyUnitDefinitions([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if Def(KindBlocker).Health != 1000 {
		t.Error("a rejected file must not change the library")
	}
}

func TestLoadUnitDefinitionsMissingFile(t *testing.T) {
	if err := LoadUnitDefinitions(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
