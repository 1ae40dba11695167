// internal/state/finished_state.go
package state

import (
	"fmt"
	"image"

	"go-hive-defense/internal/config"
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/level"
	"go-hive-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FinishedState: итог уровня поверх последнего кадра доски.
type FinishedState struct {
	sm       *StateMachine
	ctx      *Context
	previous *GameState
	retry    *ui.Button
	next     *ui.Button
	menu     *ui.Button
}

func NewFinishedState(sm *StateMachine, ctx *Context, prev *GameState) *FinishedState {
	x := (config.BoardSize - config.ButtonWidth) / 2
	y := config.BoardSize / 2
	row := func(i int) image.Rectangle {
		top := y + i*(config.ButtonHeight+config.ButtonSpacing)
		return image.Rect(x, top, x+config.ButtonWidth, top+config.ButtonHeight)
	}

	s := &FinishedState{
		sm:       sm,
		ctx:      ctx,
		previous: prev,
		retry:    ui.NewButton(row(0), "Retry", ctx.Face),
		menu:     ui.NewButton(row(2), "Menu", ctx.Face),
	}
	if prev.game.Won() && prev.game.Level < level.MaxLevel {
		s.next = ui.NewButton(row(1), "Next level", ctx.Face)
	}
	return s
}

func (s *FinishedState) Enter() {}

func (s *FinishedState) Update(deltaTime float64) {
	levelNum := s.previous.game.Level
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.ctx.StartLevel(s.sm, levelNum)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyM), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyN) && s.next != nil:
		s.ctx.StartLevel(s.sm, levelNum+1)
		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	switch {
	case s.retry.Contains(x, y):
		s.ctx.StartLevel(s.sm, levelNum)
	case s.next != nil && s.next.Contains(x, y):
		s.ctx.StartLevel(s.sm, levelNum+1)
	case s.menu.Contains(x, y):
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *FinishedState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.BoardSize, config.BoardSize, config.OverlayColor, false)

	msg, clr := "Level lost", config.LoseColor
	if s.previous.game.Won() {
		msg, clr = "Level complete", config.WinColor
	}
	banner := image.Rect(0, config.BoardSize/2-70, config.BoardSize, config.BoardSize/2-30)
	vector.DrawFilledRect(screen, 0, float32(banner.Min.Y), config.BoardSize, float32(banner.Dy()), clr, false)
	ui.DrawCentered(screen, s.ctx.Face, fmt.Sprintf("%s (%d)", msg, s.previous.game.Level), banner, config.TextLightColor)

	if t := s.ctx.Tally; t != nil {
		stats := fmt.Sprintf("shots %d   towers lost %d   enemies killed %d   hives founded %d",
			t.Count(event.ShotFired), t.Count(event.TowerRemoved),
			t.Count(event.EnemyRemoved), t.Count(event.HiveFounded))
		line := image.Rect(0, banner.Max.Y+4, config.BoardSize, banner.Max.Y+24)
		ui.DrawCentered(screen, s.ctx.Face, stats, line, config.TextLightColor)
	}

	cx, cy := ebiten.CursorPosition()
	for _, b := range []*ui.Button{s.retry, s.next, s.menu} {
		if b != nil {
			b.Draw(screen, cx, cy, false)
		}
	}
}

func (s *FinishedState) Exit() {}
