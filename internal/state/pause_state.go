// internal/state/pause_state.go
package state

import (
	"image"

	"go-hive-defense/internal/config"
	"go-hive-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру под затемнением.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, previous: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if !unpause && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = s.previous.panel.ActionAt(x, y).Type == ui.ActionPause
	}

	if unpause {
		// Снимаем с паузы саму сессию, иначе тики не пойдут.
		if g := s.previous.Game(); g.Paused() {
			g.TogglePause()
		}
		s.previous.panel.Pressed(ui.Action{Type: ui.ActionPause})
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.BoardSize, config.BoardSize, config.OverlayColor, false)
	rect := image.Rect(0, config.BoardSize/2-20, config.BoardSize, config.BoardSize/2+20)
	ui.DrawCentered(screen, s.previous.ctx.Face, config.PauseOverlayText, rect, config.TextLightColor)
}

func (s *PauseState) Exit() {}
