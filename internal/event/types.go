// internal/event/types.go
package event

import "go-hive-defense/internal/types"

const (
	UnitAdded         EventType = "UnitAdded"         // Юнит принят на доску
	PlacementRejected EventType = "PlacementRejected" // Башню нельзя ставить на врага
	EnemyRemoved      EventType = "EnemyRemoved"      // Мёртвый враг убран из списка
	TowerRemoved      EventType = "TowerRemoved"      // Мёртвая башня убрана из клетки
	ShotFired         EventType = "ShotFired"         // Стрелок попал по врагу
	HiveFounded       EventType = "HiveFounded"       // Королева основала улей
	LevelFinished     EventType = "LevelFinished"     // Время вышло или генераторы потеряны
)

// UnitData сопровождает события о конкретном юните.
type UnitData struct {
	ID   types.UnitID
	Kind string
}

// ShotData сопровождает ShotFired.
type ShotData struct {
	Shooter types.UnitID
	Target  types.UnitID
	Damage  int
}

// LevelResult сопровождает LevelFinished.
type LevelResult struct {
	Level int
	Won   bool
}
