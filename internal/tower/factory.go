// internal/tower/factory.go
package tower

import (
	"fmt"

	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/unit"
)

// New строит башню заданного вида в пиксельной позиции (x, y).
func New(kind defs.Kind, x, y, squareSize int) (unit.Tower, error) {
	switch kind {
	case defs.KindTerrain:
		return NewTerrain(x, y, squareSize), nil
	case defs.KindBlocker:
		return NewBlocker(x, y, squareSize), nil
	case defs.KindGenerator:
		return NewGenerator(x, y, squareSize), nil
	case defs.KindHealer:
		return NewHealer(x, y, squareSize), nil
	case defs.KindShooter:
		return NewShooter(x, y, squareSize), nil
	default:
		return nil, fmt.Errorf("%s is not a tower", kind)
	}
}
