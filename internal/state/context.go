// internal/state/context.go
package state

import (
	"log"

	"go-hive-defense/internal/app"
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/utils"
	"go-hive-defense/pkg/render"

	"golang.org/x/image/font"
)

// Context хранит общее для всех состояний: источник случайности, события, шрифт и палитру.
type Context struct {
	RNG    *utils.PRNGService
	Events *event.Dispatcher
	Face   font.Face
	Colors *render.BoardColors
	// Tally считает события текущего уровня для итогового экрана. Может быть nil.
	Tally *event.Tally
}

// StartLevel загружает уровень и переключает машину на игру.
// Если уровень не загрузился, возвращает в меню.
func (c *Context) StartLevel(sm *StateMachine, levelNum int) {
	g, err := app.LoadGame(levelNum, c.RNG, c.Events)
	if err != nil {
		log.Printf("state: cannot start level %d: %v", levelNum, err)
		sm.SetState(NewMenuState(sm, c))
		return
	}
	if c.Tally != nil {
		c.Tally.Reset()
	}
	sm.SetState(NewGameState(sm, c, g))
}
