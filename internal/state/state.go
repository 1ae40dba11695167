// internal/state/state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// State описывает экран игры. Машина вызывает Enter при входе и Exit при уходе.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран и флаг выхода из приложения.
type StateMachine struct {
	current State
	quit    bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState меняет экран. nil допустим: машина просто ничего не делает.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	if sm.current != nil && next != nil {
		log.Printf("state: %T -> %T", sm.current, next)
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

func (sm *StateMachine) Current() State { return sm.current }

// Quit просит главный цикл завершиться после текущего кадра.
func (sm *StateMachine) Quit() { sm.quit = true }

func (sm *StateMachine) Done() bool { return sm.quit }

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil && !sm.quit {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
