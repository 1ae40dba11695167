// internal/types/types.go
package types

// UnitID: стабильный идентификатор юнита на доске.
// Идентификаторы выдаёт доска, начиная с 1, и никогда не переиспользует.
type UnitID int64

const (
	// NoUnit означает отсутствие ссылки.
	NoUnit UnitID = 0
	// LevelSupply: источник энергии уровня. Никогда не регистрируется на доске,
	// им запитываются генераторы, расставленные загрузчиком уровня.
	LevelSupply UnitID = -1
)
