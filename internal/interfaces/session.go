// internal/interfaces/session.go
package interfaces

import "go-hive-defense/internal/defs"

// Session: то, чем фронтенды управляют уровнем. Реализуется app.Game.
type Session interface {
	Update(deltaTime float64) int
	Tick() bool

	Select(kind defs.Kind) error
	SelectNone()
	Selected() (defs.Kind, bool)
	Click(px, py int) bool

	TogglePause()
	ToggleSpeed()
	Paused() bool
	Speed() float64

	Finished() bool
	Won() bool
	Clock() string
	LevelNumber() int
}
